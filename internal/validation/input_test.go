package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

func TestValidateLink(t *testing.T) {
	assert.NoError(t, ValidateLink("github", ""))
	assert.NoError(t, ValidateLink("github", "https://github.com/alice"))
	assert.NoError(t, ValidateLink("github", "http://example.com/x"))

	for _, bad := range []string{"github.com/alice", "ftp://example.com", "https://", "https://" + strings.Repeat("a", 260) + ".com"} {
		err := ValidateLink("github", bad)
		assert.Error(t, err, bad)
		assert.True(t, apperror.IsValidation(err), bad)
	}
}

func TestValidateProfilePatch(t *testing.T) {
	assert.NoError(t, ValidateProfilePatch(entity.ProfilePatch{}))

	ok := entity.ProfilePatch{
		Name:    valueobject.Some("Alice"),
		Bio:     valueobject.Some(strings.Repeat("б", MaxBioLength)),
		Twitter: valueobject.Some("https://twitter.com/alice"),
	}
	assert.NoError(t, ValidateProfilePatch(ok))

	longBio := entity.ProfilePatch{Bio: valueobject.Some(strings.Repeat("x", MaxBioLength+1))}
	assert.Error(t, ValidateProfilePatch(longBio))

	badLink := entity.ProfilePatch{Instagram: valueobject.Some("instagram")}
	err := ValidateProfilePatch(badLink)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "instagram")
}

func TestValidateJobText(t *testing.T) {
	assert.NoError(t, ValidateJobText("Logo", "Design a logo", ""))
	assert.Error(t, ValidateJobText("  ", "Design a logo", ""))
	assert.Error(t, ValidateJobText("Logo", "", ""))
	assert.Error(t, ValidateJobText(strings.Repeat("t", MaxJobTitleLength+1), "d", ""))
}
