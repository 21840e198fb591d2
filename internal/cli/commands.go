package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/medfinder/internal/models"
	"github.com/dmitrijs2005/medfinder/internal/services"
)

type Submitter interface {
	Submit(ctx context.Context, name, email, password string) services.Outcome
}

type Searcher interface {
	Search(ctx context.Context, symptoms string) services.Outcome
	Results() services.ResultSet
}

// Register prompts on in for the three registration fields and submits them.
func Register(ctx context.Context, in io.Reader, w io.Writer, s Submitter) (services.Outcome, error) {
	reader := bufio.NewReader(in)

	name, err := GetSimpleText(reader, "Enter name", w)
	if err != nil {
		return services.Outcome{}, err
	}
	email, err := GetSimpleText(reader, "Enter email", w)
	if err != nil {
		return services.Outcome{}, err
	}
	password, err := GetPassword(in, reader, w)
	if err != nil {
		return services.Outcome{}, err
	}

	out := s.Submit(ctx, name, email, password)
	PrintOutcome(w, out)
	return out, nil
}

// Search runs one symptom search and prints the results table followed by
// the outcome.
func Search(ctx context.Context, w io.Writer, s Searcher, symptoms string) services.Outcome {
	out := s.Search(ctx, symptoms)
	if res := s.Results(); len(res.Rows) > 0 {
		fmt.Fprintln(w, RenderTable(res.Rows))
	}
	PrintOutcome(w, out)
	return out
}

// PrintOutcome writes "Title: Message". Silent outcomes print nothing.
func PrintOutcome(w io.Writer, o services.Outcome) {
	if o.Silent() {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", o.Title, o.Message)
}

// RenderTable draws rows under the doctor column headings.
func RenderTable(rows []models.DoctorRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(models.DoctorColumns...)

	for _, r := range rows {
		t.Row(r.Cells()...)
	}
	return t.Render()
}
