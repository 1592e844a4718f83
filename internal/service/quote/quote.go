package quote

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"amerex/internal/entities"
)

const maxQuoteIDAttempts = 3

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Quote struct {
	repository Repository
	pricer     Pricer
	cooldown   Cooldown
}

func New(repository Repository, pricer Pricer, cooldown Cooldown) *Quote {
	return &Quote{
		repository: repository,
		pricer:     pricer,
		cooldown:   cooldown,
	}
}

// Calculate считает стоимость без сохранения, для живого пересчёта на сайте.
func (s *Quote) Calculate(
	ctx context.Context,
	tier entities.QuoteTierType,
	weight, declaredValue float64,
	options entities.QuoteOptions,
) (entities.QuoteBreakdown, error) {
	breakdown, err := s.pricer.ComputeQuote(tier, weight, declaredValue, options)
	if err != nil {
		return entities.QuoteBreakdown{}, fmt.Errorf("compute quote: %w", err)
	}
	return breakdown, nil
}

// Submit сохраняет заявку с публичной формы. Повтор с того же email
// чаще раза в десять секунд отклоняется.
func (s *Quote) Submit(ctx context.Context, request entities.Quote) (*entities.Quote, error) {
	if isBlank(request.Name) ||
		isBlank(request.Email) ||
		isBlank(request.Origin) ||
		isBlank(request.Destination) {
		return nil, ErrMissingRequiredFields
	}
	if !emailRegexp.MatchString(strings.TrimSpace(request.Email)) {
		return nil, ErrInvalidEmail
	}

	if !s.cooldown.Allow(strings.ToLower(strings.TrimSpace(request.Email))) {
		return nil, ErrTooFrequent
	}

	breakdown, err := s.pricer.ComputeQuote(request.Tier, request.Weight, request.DeclaredValue, request.Options)
	if err != nil {
		return nil, fmt.Errorf("compute quote: %w", err)
	}
	request.Breakdown = breakdown
	request.Status = entities.QuotePending

	// сквозной номер за день считается от COUNT, параллельная заявка может
	// успеть занять его первой - тогда пересчитываем по свежему счётчику
	for attempt := 0; attempt < maxQuoteIDAttempts; attempt++ {
		quoteID, err := s.nextQuoteID(ctx)
		if err != nil {
			return nil, err
		}
		request.QuoteID = quoteID

		id, err := s.repository.Create(ctx, &request)
		if err != nil {
			if errors.Is(err, ErrQuoteIDTaken) {
				continue
			}
			return nil, fmt.Errorf("create quote: %w", err)
		}
		request.ID = id

		return &request, nil
	}

	return nil, fmt.Errorf("create quote: %w", ErrQuoteIDTaken)
}

func (s *Quote) GetQuotes(ctx context.Context) ([]entities.Quote, error) {
	quotes, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get quotes: %w", err)
	}
	return quotes, nil
}

// Публичный номер заявки вида Q-YYYYMMDD-NNN, нумерация сквозная за день.
func (s *Quote) nextQuoteID(ctx context.Context) (string, error) {
	day := time.Now().Format("20060102")

	count, err := s.repository.CountByDay(ctx, day)
	if err != nil {
		return "", fmt.Errorf("count quotes for day: %w", err)
	}

	return fmt.Sprintf("Q-%s-%03d", day, count+1), nil
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
