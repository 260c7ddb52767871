// Package router implements the per-turn pipeline: ingest the utterance,
// normalize language, consult the response cache, dispatch to the first
// matching skill, cache the fresh answer and localize it back. Every
// external call degrades to fallback text, so a turn always produces a
// reply.
package router

import (
	"context"
	"log/slog"

	"github.com/auraya-bot/auraya/internal/cache"
	"github.com/auraya-bot/auraya/internal/config"
	"github.com/auraya-bot/auraya/internal/domain"
	"github.com/auraya-bot/auraya/internal/session"
	"github.com/auraya-bot/auraya/internal/skill"
	"github.com/google/uuid"
)

type Detector interface {
	Detect(text string) (string, bool)
}

type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

type Router struct {
	detector   Detector
	translator Translator
	cache      cache.Store
	sessions   *session.Store
	skills     []skill.Skill
}

func New(detector Detector, translator Translator, cacheStore cache.Store, sessions *session.Store, skills []skill.Skill) *Router {
	return &Router{
		detector:   detector,
		translator: translator,
		cache:      cacheStore,
		sessions:   sessions,
		skills:     skills,
	}
}

// Answer runs one full turn for a conversation. It never fails: translation
// and skill errors degrade to fallback text.
func (r *Router) Answer(ctx context.Context, conversationID, text string) string {
	turnID := uuid.NewString()

	dialog := r.sessions.GetOrCreate(conversationID)
	dialog.Append(domain.SpeakerUser, text)

	lang := config.WorkingLanguage
	if code, ok := r.detector.Detect(text); ok {
		lang = code
	}

	workingText := text
	if lang != config.WorkingLanguage {
		if translated, err := r.translator.Translate(ctx, text, config.WorkingLanguage); err != nil {
			slog.Warn("translation to working language failed",
				"turn_id", turnID, "lang", lang, "error", err)
		} else {
			workingText = translated
		}
	}

	workingAnswer, hit := r.cache.Get(ctx, workingText)
	skillName := "cache"
	if !hit {
		skillName, workingAnswer = r.dispatch(ctx, workingText)
		r.cache.Put(ctx, workingText, workingAnswer, config.CacheTTL)
	}

	answer := workingAnswer
	if lang != config.WorkingLanguage {
		if translated, err := r.translator.Translate(ctx, workingAnswer, lang); err != nil {
			slog.Warn("answer localization failed",
				"turn_id", turnID, "lang", lang, "error", err)
		} else {
			answer = translated
		}
	}

	dialog.Append(domain.SpeakerBot, answer)
	slog.Info("turn completed",
		"turn_id", turnID,
		"conversation_id", conversationID,
		"skill", skillName,
		"cache_hit", hit,
		"lang", lang,
	)
	return answer
}

// dispatch evaluates the skills in their fixed order and answers with the
// first one whose predicate holds.
func (r *Router) dispatch(ctx context.Context, text string) (string, string) {
	for _, s := range r.skills {
		m, ok := s.Match(text)
		if !ok {
			continue
		}
		return s.Name(), r.answerOrFallback(ctx, s, m)
	}
	// Unreachable with the default skill set (chit-chat matches everything),
	// but a configured router must still always answer.
	return "none", "🤔 I'm not sure what to say to that. Try /help to see what I can do!"
}

// answerOrFallback is the single degradation point: a failing or empty skill
// answer is replaced by that skill's canned fallback.
func (r *Router) answerOrFallback(ctx context.Context, s skill.Skill, m skill.Match) string {
	text, err := s.Answer(ctx, m)
	if err != nil {
		slog.Warn("skill answer failed", "skill", s.Name(), "error", err)
		return s.Fallback(m, err)
	}
	if text == "" {
		return s.Fallback(m, domain.ErrEmptyResult)
	}
	return text
}
