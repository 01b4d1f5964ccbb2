package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilePatchApply(t *testing.T) {
	bio, country := "hello", "Oman"
	u := User{ID: 1, Name: "Alia", Bio: "old", Profession: "Photographer"}

	assert.True(t, ProfilePatch{}.Empty())

	patch := ProfilePatch{Bio: &bio, Country: &country}
	require.NoError(t, patch.Validate())
	assert.False(t, patch.Empty())

	got := patch.Apply(u)
	assert.Equal(t, "hello", got.Bio)
	assert.Equal(t, "Oman", got.Country)
	assert.Equal(t, "Photographer", got.Profession)
	assert.Equal(t, "old", u.Bio)
}

func TestProfilePatchValidate(t *testing.T) {
	long := strings.Repeat("x", 501)
	assert.Error(t, ProfilePatch{Bio: &long}.Validate())

	negative := -3
	assert.Error(t, ProfilePatch{ProfileViews: &negative}.Validate())

	empty := ""
	assert.NoError(t, ProfilePatch{Bio: &empty}.Validate())
}
