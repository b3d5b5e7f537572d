package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type user struct {
	admin bool
}

func (u user) IsSuperAdmin() bool { return u.admin }

type account struct {
	admin bool
}

func (a *account) IsSuperAdmin() bool { return a.admin }

func TestBasePolicy(t *testing.T) {
	var p BasePolicy

	allowed, decided := p.Before(user{admin: true}, "update")
	assert.True(t, allowed)
	assert.True(t, decided)

	_, decided = p.Before(user{}, "update")
	assert.False(t, decided)

	_, decided = p.Before(nil, "update")
	assert.False(t, decided)

	assert.False(t, p.ViewAny(user{}))
	assert.False(t, p.Create(user{}))
}

func TestAuthorize(t *testing.T) {
	var p BasePolicy
	owner := func() bool { return true }

	assert.True(t, Authorize(p, user{admin: true}, "delete", nil))
	assert.True(t, Authorize(p, user{}, "delete", owner))
	assert.False(t, Authorize(p, user{}, "delete", nil))
	assert.False(t, Authorize(p, nil, "create", func() bool { return p.Create(nil) }))
}

func TestBeforeWithTypedNilUser(t *testing.T) {
	var p BasePolicy
	var guest *account

	assert.NotPanics(t, func() {
		_, decided := p.Before(guest, "view")
		assert.False(t, decided)
	})
	assert.False(t, Authorize(p, guest, "view", nil))

	allowed, decided := p.Before(&account{admin: true}, "view")
	assert.True(t, allowed)
	assert.True(t, decided)
}
