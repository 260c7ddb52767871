package skill

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/shopspring/decimal"
)

// Math evaluates arithmetic expressions found in the utterance, including
// verbal operators ("5 plus 3", "5 плюс 3").
type Math struct{}

func NewMath() *Math { return &Math{} }

func (m *Math) Name() string { return "math" }

var (
	operatorTokens = []string{
		"+", "-", "*", "/", "=", "^", "sqrt", "mod", "sin", "cos", "tan", "log",
		"plus", "minus", "times", "divided by", "плюс", "минус", "умножить", "разделить",
	}
	reDigit        = regexp.MustCompile(`[0-9]`)
	reNumericOp    = regexp.MustCompile(`[0-9]\s*[-+*/^%]\s*[0-9]`)
	reExprToken    = regexp.MustCompile(`sqrt|sin|cos|tan|log|abs|\*\*|[0-9]+(?:\.[0-9]+)?|[-+*/%().]`)

	verbalOperators = []struct {
		pattern *regexp.Regexp
		symbol  string
	}{
		{regexp.MustCompile(`умножить на`), " * "},
		{regexp.MustCompile(`разделить на`), " / "},
		{regexp.MustCompile(`\bdivided by\b`), " / "},
		{regexp.MustCompile(`\btimes\b`), " * "},
		{regexp.MustCompile(`\bplus\b|плюс`), " + "},
		{regexp.MustCompile(`\bminus\b|минус`), " - "},
		{regexp.MustCompile(`\bmod\b`), " % "},
	}

	mathFunctions = map[string]govaluate.ExpressionFunction{
		"sqrt": wrapFloat(mathSqrt),
		"sin":  wrapFloat(mathSin),
		"cos":  wrapFloat(mathCos),
		"tan":  wrapFloat(mathTan),
		"log":  wrapFloat(mathLog),
		"abs":  wrapFloat(mathAbs),
	}
)

// IsExpression reports whether text looks like arithmetic: an operator token
// together with at least one digit, or an explicit number-operator-number
// pattern.
func IsExpression(text string) bool {
	lower := strings.ToLower(text)
	if reNumericOp.MatchString(lower) {
		return true
	}
	if !reDigit.MatchString(lower) {
		return false
	}
	for _, op := range operatorTokens {
		if strings.Contains(lower, op) {
			return true
		}
	}
	return false
}

// CleanExpression rewrites verbal operators into symbols and strips
// everything that is not part of an arithmetic expression.
func CleanExpression(text string) string {
	lower := strings.ToLower(text)
	for _, v := range verbalOperators {
		lower = v.pattern.ReplaceAllString(lower, v.symbol)
	}
	lower = strings.ReplaceAll(lower, "^", "**")
	tokens := reExprToken.FindAllString(lower, -1)
	return strings.Join(tokens, "")
}

func (m *Math) Match(text string) (Match, bool) {
	if !IsExpression(text) {
		return Match{}, false
	}
	expr := CleanExpression(text)
	if expr == "" {
		return Match{}, false
	}
	return Match{Input: text, Expression: expr}, true
}

func (m *Math) Answer(_ context.Context, match Match) (string, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(match.Expression, mathFunctions)
	if err != nil {
		return "", fmt.Errorf("parse expression: %w", err)
	}
	raw, err := expr.Evaluate(nil)
	if err != nil {
		return "", fmt.Errorf("evaluate expression: %w", err)
	}
	value, ok := raw.(float64)
	if !ok {
		return "", fmt.Errorf("expression did not produce a number")
	}

	return fmt.Sprintf("🧮 **%s** = **%s**\n\n💡 %s",
		match.Expression, renderNumber(value), explain(match.Expression)), nil
}

func (m *Math) Fallback(match Match, _ error) string {
	return fmt.Sprintf("❌ Cannot compute: **%s**\n\n"+
		"💡 Check the expression. Supported: +, -, *, /, ^, sqrt(), sin(), cos() and so on.",
		match.Input)
}

// renderNumber prints integers without a fractional part and rounds the rest.
func renderNumber(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.IsInteger() {
		return d.StringFixed(0)
	}
	return d.Round(6).String()
}

// explain picks a one-line description keyed on the first operator present.
func explain(expr string) string {
	switch {
	case strings.Contains(expr, "sqrt"):
		return "I took the square root."
	case strings.Contains(expr, "sin"), strings.Contains(expr, "cos"), strings.Contains(expr, "tan"):
		return "I evaluated the trigonometric function."
	case strings.Contains(expr, "log"):
		return "I evaluated the logarithm."
	case strings.Contains(expr, "**"):
		return "I raised the number to the given power."
	case strings.Contains(expr, "%"):
		return "I took the remainder of the division."
	case strings.Contains(expr, "*"), strings.Contains(expr, "/"):
		return "I multiplied and divided before adding, as the order of operations requires."
	case strings.Contains(expr, "+"):
		return "I added the numbers together."
	case strings.Contains(expr, "-"):
		return "I subtracted the numbers."
	default:
		return "I evaluated the expression."
	}
}
