package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surajmeruva0786/DigiGov10/internal/i18n"
)

func TestLocalizedMessages(t *testing.T) {
	l, err := i18n.New()
	require.NoError(t, err)

	assert.Equal(t, "Successfully logged in", l.T("en", "login_ok"))
	assert.Equal(t, "सफलतापूर्वक लॉगिन हो गए", l.T("hi", "login_ok"))
}

func TestFallbackToEnglishThenKey(t *testing.T) {
	l, err := i18n.New()
	require.NoError(t, err)

	// unknown language falls back to English
	assert.Equal(t, "Successfully logged out", l.T("fr", "logout_ok"))
	// unknown key falls back to the key itself
	assert.Equal(t, "no_such_key", l.T("hi", "no_such_key"))
}

func TestFormattedMessage(t *testing.T) {
	l, err := i18n.New()
	require.NoError(t, err)

	assert.Equal(t, "Complaint registered. Complaint ID: #12345", l.Tf("en", "complaint_registered", "#12345"))
	assert.Contains(t, l.Tf("hi", "complaint_registered", "#12345"), "#12345")
}
