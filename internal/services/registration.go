package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/medfinder/internal/common"
	"github.com/dmitrijs2005/medfinder/internal/database"
	"github.com/dmitrijs2005/medfinder/internal/logging"
	"github.com/dmitrijs2005/medfinder/internal/models"
	"github.com/dmitrijs2005/medfinder/internal/navigation"
)

// Navigator switches the visible page.
type Navigator interface {
	Show(id navigation.PageID) error
}

type RegistrationService struct {
	gw     Gateway
	nav    Navigator
	logger logging.Logger
}

func NewRegistrationService(gw Gateway, nav Navigator, logger logging.Logger) *RegistrationService {
	return &RegistrationService{gw: gw, nav: nav, logger: logger}
}

// SetNavigator replaces the navigator. A nil navigator disables navigation,
// which is what line-mode callers want.
func (s *RegistrationService) SetNavigator(nav Navigator) {
	s.nav = nav
}

// Submit stores a new user when all three fields are non-empty and moves to
// the search page on success. Values are stored exactly as given.
func (s *RegistrationService) Submit(ctx context.Context, name, email, password string) Outcome {
	log := s.logger.With("op", "register", "op_id", uuid.NewString())

	if name == "" || email == "" || password == "" {
		log.Warn(ctx, "registration rejected", "error", common.ErrFieldsRequired)
		return Outcome{
			Kind:    InputError,
			Title:   "Input Error",
			Message: "All fields are required!",
			Err:     &common.InputError{Err: common.ErrFieldsRequired},
		}
	}

	u := &models.User{Name: name, Email: email, Password: password}
	err := s.gw.WithConnection(ctx, func(ctx context.Context, conn *database.Connection) error {
		if err := s.gw.Repos().Users(conn).Create(ctx, u); err != nil {
			return err
		}
		return conn.Commit()
	})
	if err != nil {
		log.Error(ctx, "registration failed", "error", err)
		return databaseError(err)
	}

	log.Info(ctx, "user registered", "email", email)

	if s.nav != nil {
		if err := s.nav.Show(navigation.SearchPage); err != nil {
			log.Error(ctx, "navigation failed", "error", err)
		}
	}

	return Outcome{Kind: Success, Title: "Success", Message: "Registration successful!"}
}
