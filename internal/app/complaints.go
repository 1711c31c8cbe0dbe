package app

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jizzakh_hotels/internal/adapters/observability"
	"jizzakh_hotels/internal/domain"
)

// ComplaintInput is the complaint form as the user fills it in.
type ComplaintInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ComplaintService submits complaints fire-and-forget: the client generates
// id, timestamp and a pending status, posts them, and never reads them back.
type ComplaintService struct {
	client   domain.BackendClient
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

func NewComplaintService(client domain.BackendClient, log zerolog.Logger) *ComplaintService {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ComplaintService{
		client:   client,
		validate: v,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *ComplaintService) Submit(ctx context.Context, in ComplaintInput) (domain.Complaint, error) {
	if err := s.validate.Struct(in); err != nil {
		fe := FieldErrors{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, ve := range verrs {
				fe[ve.Field()] = reasonFor(ve)
			}
		} else {
			fe["form"] = err.Error()
		}
		return domain.Complaint{}, &ValidationError{Fields: fe}
	}

	c := domain.Complaint{
		ID:        s.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    "pending",
		CreatedAt: s.now().UTC(),
	}
	err := s.client.CreateComplaint(ctx, c)
	observability.ObserveStore("complaints", "create", err)
	if err != nil {
		s.log.Warn().Err(err).Msg("complaint submit failed")
		return domain.Complaint{}, err
	}
	s.log.Info().Str("id", c.ID).Str("subject", c.Subject).Msg("complaint submitted")
	return c, nil
}
