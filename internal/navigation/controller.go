// Package navigation keeps track of which page of the application is visible.
//
// A Controller owns a registry of pages and one active pointer. It is owned by
// the UI loop and is not safe for concurrent use.
package navigation

import (
	"fmt"

	"github.com/dmitrijs2005/medfinder/internal/common"
)

type PageID string

const (
	RegistrationPage PageID = "registration"
	SearchPage       PageID = "search"
)

// Page is one screen of the application.
type Page interface {
	ID() PageID
	View() string
	Activate()
	Deactivate()
}

type Controller struct {
	pages  map[PageID]Page
	active PageID
}

// NewController registers pages and activates RegistrationPage, which must
// be among them.
func NewController(pages ...Page) (*Controller, error) {
	c := &Controller{pages: make(map[PageID]Page, len(pages))}

	for _, p := range pages {
		if _, ok := c.pages[p.ID()]; ok {
			return nil, fmt.Errorf("%s: %w", p.ID(), common.ErrDuplicatePage)
		}
		c.pages[p.ID()] = p
	}

	start, ok := c.pages[RegistrationPage]
	if !ok {
		return nil, fmt.Errorf("%s: %w", RegistrationPage, common.ErrUnknownPage)
	}
	c.active = RegistrationPage
	start.Activate()

	return c, nil
}

// Show makes id the active page. Showing the page that is already active does
// nothing.
func (c *Controller) Show(id PageID) error {
	next, ok := c.pages[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, common.ErrUnknownPage)
	}
	if id == c.active {
		return nil
	}

	c.pages[c.active].Deactivate()
	c.active = id
	next.Activate()
	return nil
}

func (c *Controller) Active() PageID {
	return c.active
}

func (c *Controller) ActivePage() Page {
	return c.pages[c.active]
}

// View renders the active page only.
func (c *Controller) View() string {
	return c.ActivePage().View()
}
