package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/medfinder/internal/common"
)

type fakePage struct {
	id          PageID
	activated   int
	deactivated int
}

func (p *fakePage) ID() PageID   { return p.id }
func (p *fakePage) View() string { return "view:" + string(p.id) }
func (p *fakePage) Activate()    { p.activated++ }
func (p *fakePage) Deactivate()  { p.deactivated++ }

func newPages() (*fakePage, *fakePage) {
	return &fakePage{id: RegistrationPage}, &fakePage{id: SearchPage}
}

func TestNewController_StartsOnRegistration(t *testing.T) {
	reg, search := newPages()

	c, err := NewController(search, reg)
	require.NoError(t, err)

	assert.Equal(t, RegistrationPage, c.Active())
	assert.Same(t, reg, c.ActivePage())
	assert.Equal(t, "view:registration", c.View())
	assert.Equal(t, 1, reg.activated)
	assert.Zero(t, search.activated)
}

func TestNewController_Errors(t *testing.T) {
	reg, search := newPages()

	_, err := NewController(reg, search, &fakePage{id: SearchPage})
	require.ErrorIs(t, err, common.ErrDuplicatePage)

	_, err = NewController(search)
	require.ErrorIs(t, err, common.ErrUnknownPage)
}

func TestShow_SwitchesPages(t *testing.T) {
	reg, search := newPages()
	c, err := NewController(reg, search)
	require.NoError(t, err)

	require.NoError(t, c.Show(SearchPage))
	assert.Equal(t, SearchPage, c.Active())
	assert.Equal(t, "view:search", c.View())
	assert.Equal(t, 1, reg.deactivated)
	assert.Equal(t, 1, search.activated)

	require.NoError(t, c.Show(RegistrationPage))
	assert.Equal(t, RegistrationPage, c.Active())
	assert.Equal(t, 2, reg.activated)
	assert.Equal(t, 1, search.deactivated)
}

func TestShow_SamePageIsNoop(t *testing.T) {
	reg, search := newPages()
	c, err := NewController(reg, search)
	require.NoError(t, err)

	require.NoError(t, c.Show(SearchPage))
	require.NoError(t, c.Show(SearchPage))

	assert.Equal(t, SearchPage, c.Active())
	assert.Equal(t, 1, search.activated)
	assert.Zero(t, search.deactivated)
	assert.Equal(t, 1, reg.deactivated)
}

func TestShow_UnknownPageKeepsState(t *testing.T) {
	reg, search := newPages()
	c, err := NewController(reg, search)
	require.NoError(t, err)

	err = c.Show(PageID("settings"))
	require.ErrorIs(t, err, common.ErrUnknownPage)
	assert.Equal(t, RegistrationPage, c.Active())
	assert.Zero(t, reg.deactivated)
}
