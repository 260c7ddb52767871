package router

import (
	"context"
	"strings"
	"testing"

	"github.com/auraya-bot/auraya/internal/cache"
	"github.com/auraya-bot/auraya/internal/domain"
	"github.com/auraya-bot/auraya/internal/session"
	"github.com/auraya-bot/auraya/internal/skill"
)

type fakeDetector struct {
	code string
}

func (f *fakeDetector) Detect(string) (string, bool) {
	if f.code == "" {
		return "", false
	}
	return f.code, true
}

type fakeTranslator struct {
	fail  bool
	calls []string // target languages, in order
}

func (f *fakeTranslator) Translate(_ context.Context, text, targetLang string) (string, error) {
	f.calls = append(f.calls, targetLang)
	if f.fail {
		return "", domain.ErrProviderUnavailable
	}
	return "[" + targetLang + "] " + text, nil
}

type countingEncyclopedia struct {
	calls int
}

func (c *countingEncyclopedia) Summary(context.Context, string) (string, error) {
	c.calls++
	return "📖 **Rust**\n\nRust is a systems programming language.", nil
}

type countingWeather struct {
	calls int
}

func (c *countingWeather) CurrentWeather(context.Context, string) (*domain.WeatherFacts, error) {
	c.calls++
	return &domain.WeatherFacts{City: "London", Temp: 10}, nil
}

type staticRepos struct{}

func (staticRepos) SearchRepositories(context.Context, string, int) ([]domain.Repo, error) {
	return []domain.Repo{{Name: "repo", Description: "desc", URL: "https://example.com"}}, nil
}

type testRig struct {
	router       *Router
	sessions     *session.Store
	encyclopedia *countingEncyclopedia
	weather      *countingWeather
	translator   *fakeTranslator
}

func newRig(lang string, translatorFails bool) *testRig {
	enc := &countingEncyclopedia{}
	wea := &countingWeather{}
	tr := &fakeTranslator{fail: translatorFails}
	sessions := session.NewStore(0)
	skills := skill.Default(skill.Deps{
		Encyclopedia: enc,
		Weather:      wea,
		Repos:        staticRepos{},
	})
	return &testRig{
		router:       New(&fakeDetector{code: lang}, tr, cache.NewMemory(), sessions, skills),
		sessions:     sessions,
		encyclopedia: enc,
		weather:      wea,
		translator:   tr,
	}
}

func TestAnswerCacheRoundTrip(t *testing.T) {
	rig := newRig("EN", false)
	ctx := context.Background()

	first := rig.router.Answer(ctx, "chat-1", "What is Rust?")
	if rig.encyclopedia.calls != 1 {
		t.Fatalf("encyclopedia calls after first turn = %d, want 1", rig.encyclopedia.calls)
	}

	second := rig.router.Answer(ctx, "chat-1", "What is Rust?")
	if rig.encyclopedia.calls != 1 {
		t.Fatalf("encyclopedia calls after cache hit = %d, want 1", rig.encyclopedia.calls)
	}
	if first != second {
		t.Fatalf("cached answer differs: %q vs %q", first, second)
	}
}

func TestAnswerAlwaysNonEmpty(t *testing.T) {
	rig := newRig("", false)
	ctx := context.Background()

	inputs := []string{
		"",
		"hello",
		"What is Rust?",
		"2 + 2 * 3",
		"weather",
		"show me an example in python",
		"github",
		strings.Repeat("long rambling text ", 10),
	}
	for _, in := range inputs {
		if got := rig.router.Answer(ctx, "chat-1", in); got == "" {
			t.Fatalf("Answer(%q) returned empty text", in)
		}
	}
}

func TestSkillPriorityMathBeforeWeather(t *testing.T) {
	rig := newRig("EN", false)

	// Matches both the arithmetic pattern (digits and operators) and the
	// weather keyword set; arithmetic is earlier in the fixed order and
	// must win.
	got := rig.router.Answer(context.Background(), "chat-1", "weather 2 + 2")
	if !strings.Contains(got, "4") {
		t.Fatalf("Answer() = %q, want the arithmetic result 4", got)
	}
	if rig.weather.calls != 0 {
		t.Fatalf("weather collaborator called %d times, want 0", rig.weather.calls)
	}
}

func TestEncyclopediaBeforeRepos(t *testing.T) {
	rig := newRig("EN", false)

	// "what is" prefix plus a repos keyword; encyclopedia is earlier.
	got := rig.router.Answer(context.Background(), "chat-1", "What is github code?")
	if !strings.Contains(got, "Rust is a systems programming language.") {
		t.Fatalf("Answer() = %q, want the encyclopedia answer", got)
	}
}

func TestDialogOrdering(t *testing.T) {
	rig := newRig("EN", false)
	ctx := context.Background()

	rig.router.Answer(ctx, "chat-1", "hello")
	rig.router.Answer(ctx, "chat-1", "2 + 2")

	history := rig.sessions.GetOrCreate("chat-1").History()
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}
	wantSpeakers := []domain.Speaker{
		domain.SpeakerUser, domain.SpeakerBot,
		domain.SpeakerUser, domain.SpeakerBot,
	}
	for i, m := range history {
		if m.Speaker != wantSpeakers[i] {
			t.Fatalf("history[%d].Speaker = %q, want %q", i, m.Speaker, wantSpeakers[i])
		}
		if i > 0 && m.Timestamp.Before(history[i-1].Timestamp) {
			t.Fatalf("timestamps not non-decreasing at %d", i)
		}
	}
}

func TestTranslationFailureDegrades(t *testing.T) {
	rig := newRig("RU", true)

	got := rig.router.Answer(context.Background(), "chat-1", "What is Rust?")
	if got == "" {
		t.Fatalf("Answer() returned empty text with a failing translator")
	}
	// Untranslated working-language content must come through.
	if !strings.Contains(got, "Rust is a systems programming language.") {
		t.Fatalf("Answer() = %q, want the untranslated english answer", got)
	}
}

func TestLocalization(t *testing.T) {
	rig := newRig("RU", false)

	got := rig.router.Answer(context.Background(), "chat-1", "привет")
	if !strings.HasPrefix(got, "[RU] ") {
		t.Fatalf("Answer() = %q, want it localized to RU", got)
	}
	if len(rig.translator.calls) != 2 || rig.translator.calls[0] != "EN" || rig.translator.calls[1] != "RU" {
		t.Fatalf("translator calls = %v, want [EN RU]", rig.translator.calls)
	}
}

func TestCacheNotRewrittenOnHit(t *testing.T) {
	rig := newRig("EN", false)
	ctx := context.Background()

	store := cache.NewMemory()
	r := New(&fakeDetector{code: "EN"}, rig.translator, store, session.NewStore(0),
		skill.Default(skill.Deps{
			Encyclopedia: rig.encyclopedia,
			Weather:      rig.weather,
			Repos:        staticRepos{},
		}))

	r.Answer(ctx, "c", "What is Rust?")
	cached, ok := store.Get(ctx, "What is Rust?")
	if !ok {
		t.Fatalf("answer was not cached under the working-language key")
	}
	if got := r.Answer(ctx, "c", "What is Rust?"); got != cached {
		t.Fatalf("cache hit answer = %q, want stored %q", got, cached)
	}
}
