package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailValidate(t *testing.T) {
	tests := []struct {
		name    string
		email   Email
		wantErr error
	}{
		{
			name:  "complete message",
			email: Email{To: []string{"asha@example.com"}, Subject: "Hello", HTML: "<p>hi</p>"},
		},
		{
			name:    "no recipient",
			email:   Email{Subject: "Hello", HTML: "<p>hi</p>"},
			wantErr: ErrNoRecipient,
		},
		{
			name:    "no subject",
			email:   Email{To: []string{"asha@example.com"}, HTML: "<p>hi</p>"},
			wantErr: ErrNoSubject,
		},
		{
			name:    "no content",
			email:   Email{To: []string{"asha@example.com"}, Subject: "Hello"},
			wantErr: ErrNoContent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.email.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRecipient(t *testing.T) {
	require.Equal(t, "Asha <asha@example.com>", Recipient("Asha", "asha@example.com"))
	require.Equal(t, "asha@example.com", Recipient("", "asha@example.com"))
}
