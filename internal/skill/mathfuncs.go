package skill

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

func mathSqrt(v float64) float64 { return math.Sqrt(v) }
func mathSin(v float64) float64  { return math.Sin(v) }
func mathCos(v float64) float64  { return math.Cos(v) }
func mathTan(v float64) float64  { return math.Tan(v) }
func mathLog(v float64) float64  { return math.Log(v) }
func mathAbs(v float64) float64  { return math.Abs(v) }

func wrapFloat(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("expected a number, got %T", args[0])
		}
		return fn(v), nil
	}
}
