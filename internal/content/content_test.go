package content_test

import (
	"os"
	"path"
	"testing"

	"github.com/leighmacdonald/folio/internal/content"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	portfolio, err := content.Default()
	require.NoError(t, err)
	require.NotEmpty(t, portfolio.Profile.Name)
	require.Len(t, portfolio.ContactResponses, 4)
	require.NotEmpty(t, portfolio.Skills)
	require.Equal(t, "Jordan_Avery_Resume.pdf", portfolio.ResumeFilename())

	stats := portfolio.Stats(7)
	require.Equal(t, 7, stats.TotalContacts)
	require.Equal(t, 15, stats.TotalProjects)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	docPath := path.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(docPath, []byte(`
profile:
  name: Test Person
contact_responses: ["thanks"]
projects:
  - title: one
  - title: two
`), 0o600))

	portfolio, err := content.Load(docPath)
	require.NoError(t, err)
	require.Equal(t, "Test Person", portfolio.Profile.Name)
	require.Equal(t, "resume.pdf", portfolio.ResumeFilename())
	require.Equal(t, 2, portfolio.Stats(0).TotalProjects)

	_, errMissing := content.Load(path.Join(dir, "missing.yaml"))
	require.ErrorIs(t, errMissing, content.ErrContentRead)
}

func TestParseInvalid(t *testing.T) {
	_, err := content.Parse([]byte("profile: [nope"))
	require.ErrorIs(t, err, content.ErrContentDecode)

	_, err = content.Parse([]byte("profile: {name: x}"))
	require.ErrorIs(t, err, content.ErrContentInvalid)

	_, err = content.Parse([]byte(`
profile: {name: x}
contact_responses: [ok]
skills:
  - name: bad
    skills: [{name: Go, level: 120}]
`))
	require.ErrorIs(t, err, content.ErrContentInvalid)
}
