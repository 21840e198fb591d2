package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/medfinder/internal/database"
	"github.com/dmitrijs2005/medfinder/internal/logging"
	"github.com/dmitrijs2005/medfinder/internal/models"
)

// ResultSet is the outcome of the most recent search. Ran is false until the
// first search, so an empty result and "not searched yet" differ.
type ResultSet struct {
	Rows []models.DoctorRow
	Ran  bool
}

type SearchService struct {
	gw      Gateway
	logger  logging.Logger
	results ResultSet
}

func NewSearchService(gw Gateway, logger logging.Logger) *SearchService {
	return &SearchService{gw: gw, logger: logger}
}

// Pattern wraps symptoms in LIKE wildcards. The text itself is not escaped,
// so % and _ typed by the user act as wildcards too.
func Pattern(symptoms string) string {
	return "%" + symptoms + "%"
}

// Search replaces the result set with the doctors whose symptoms contain the
// given text. An empty text matches every doctor. On failure the previous
// results are cleared.
func (s *SearchService) Search(ctx context.Context, symptoms string) Outcome {
	log := s.logger.With("op", "search", "op_id", uuid.NewString())

	var rows []models.DoctorRow
	err := s.gw.WithConnection(ctx, func(ctx context.Context, conn *database.Connection) error {
		var err error
		rows, err = s.gw.Repos().Doctors(conn).SearchBySymptoms(ctx, Pattern(symptoms))
		return err
	})
	if err != nil {
		s.results = ResultSet{Rows: []models.DoctorRow{}, Ran: true}
		log.Error(ctx, "search failed", "error", err)
		return databaseError(err)
	}

	s.results = ResultSet{Rows: rows, Ran: true}
	log.Info(ctx, "search finished", "symptoms", symptoms, "rows", len(rows))

	if len(rows) == 0 {
		return Outcome{Kind: NoResults, Title: "No Results", Message: "No matching doctors found."}
	}
	return Outcome{Kind: Success}
}

// Results returns a copy of the current result set.
func (s *SearchService) Results() ResultSet {
	rows := make([]models.DoctorRow, len(s.results.Rows))
	copy(rows, s.results.Rows)
	return ResultSet{Rows: rows, Ran: s.results.Ran}
}
