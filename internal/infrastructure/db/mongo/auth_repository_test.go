package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carboncell/user-auth/internal/core/domain"
)

func dupKeyWriteException(msg string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: msg},
		},
	}
}

func TestDuplicateKeyToDomain_UsernameIndex(t *testing.T) {
	err := dupKeyWriteException(
		`E11000 duplicate key error collection: user_auth.users index: username_1 dup key: { username: "alice" }`)

	if got := duplicateKeyToDomain(err); !errors.Is(got, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", got)
	}
}

func TestDuplicateKeyToDomain_EmailIndex(t *testing.T) {
	err := dupKeyWriteException(
		`E11000 duplicate key error collection: user_auth.users index: email_1 dup key: { email: "alice@example.com" }`)

	if got := duplicateKeyToDomain(err); !errors.Is(got, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", got)
	}
}

func TestDuplicateKeyToDomain_UsernameValueMentioningEmail(t *testing.T) {
	// The duplicated value itself contains "email"; only the violated
	// index name may decide which rejection the caller sees.
	err := dupKeyWriteException(
		`E11000 duplicate key error collection: user_auth.users index: username_1 dup key: { username: "my_email_handle" }`)

	if got := duplicateKeyToDomain(err); !errors.Is(got, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken for a username violation, got %v", got)
	}
}

func TestDuplicateKeyToDomain_CommandError(t *testing.T) {
	err := mongo.CommandError{
		Code:    11000,
		Message: `E11000 duplicate key error collection: user_auth.users index: email_1 dup key: { email: "bob@example.com" }`,
	}

	if got := duplicateKeyToDomain(err); !errors.Is(got, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", got)
	}
}

func TestDuplicateKeyToDomain_UnparsableDefaultsToUsername(t *testing.T) {
	err := dupKeyWriteException("E11000 duplicate key error")

	if got := duplicateKeyToDomain(err); !errors.Is(got, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken fallback, got %v", got)
	}
}

func TestViolatedIndex(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{`E11000 duplicate key error collection: db.users index: username_1 dup key: { username: "x" }`, "username_1"},
		{`E11000 duplicate key error collection: db.users index: email_1 dup key: { email: "x" }`, "email_1"},
		{`E11000 duplicate key error`, ""},
	}

	for _, tc := range cases {
		if got := violatedIndex(tc.msg); got != tc.want {
			t.Errorf("violatedIndex(%q) = %q, want %q", tc.msg, got, tc.want)
		}
	}
}
