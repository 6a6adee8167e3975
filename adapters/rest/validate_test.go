package rest

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/vickylk-dev/task-manager-tool/core"
)

func TestValidateCredentials(t *testing.T) {
	t.Parallel()

	if errs := ValidateCredentials(CredentialsIn{Email: "user@example.com", Password: "secret1"}); len(errs) != 0 {
		t.Fatalf("expected valid credentials, got %v", errs)
	}

	errs := ValidateCredentials(CredentialsIn{})
	if errs["email"] == "" || errs["password"] == "" {
		t.Fatalf("expected both fields flagged, got %v", errs)
	}

	for _, email := range []string{"plain", "no@dot", "sp ace@x.co", "@x.co", "a@.co"} {
		errs := ValidateCredentials(CredentialsIn{Email: email, Password: "secret1"})
		if errs["email"] == "" {
			t.Fatalf("expected email %q rejected", email)
		}
	}

	// 5 characters is too short, 6 is the minimum
	if errs := ValidateCredentials(CredentialsIn{Email: "a@b.co", Password: "12345"}); errs["password"] == "" {
		t.Fatal("expected 5-character password rejected")
	}
	if errs := ValidateCredentials(CredentialsIn{Email: "a@b.co", Password: "123456"}); errs["password"] != "" {
		t.Fatalf("expected 6-character password accepted, got %v", errs)
	}
}

func TestValidateTitle_Boundaries(t *testing.T) {
	t.Parallel()

	if msg := ValidateTitle(""); msg == "" {
		t.Fatal("expected empty title rejected")
	}
	if msg := ValidateTitle("ab"); msg == "" {
		t.Fatal("expected 2-character title rejected")
	}
	if msg := ValidateTitle("abc"); msg != "" {
		t.Fatalf("expected 3-character title accepted, got %q", msg)
	}
	// trimming happens before the length check
	if msg := ValidateTitle("  ab  "); msg == "" {
		t.Fatal("expected padded 2-character title rejected")
	}

	if msg := ValidateTitle(strings.Repeat("x", 100)); msg != "" {
		t.Fatalf("expected 100-character title accepted, got %q", msg)
	}
	if msg := ValidateTitle(strings.Repeat("x", 101)); msg == "" {
		t.Fatal("expected 101-character title rejected")
	}
}

func TestValidateDescription_Boundary(t *testing.T) {
	t.Parallel()

	if msg := ValidateDescription(""); msg != "" {
		t.Fatalf("expected empty description accepted, got %q", msg)
	}
	if msg := ValidateDescription(strings.Repeat("d", 500)); msg != "" {
		t.Fatalf("expected 500-character description accepted, got %q", msg)
	}
	if msg := ValidateDescription(strings.Repeat("d", 501)); msg == "" {
		t.Fatal("expected 501-character description rejected")
	}
}

func TestValidateAttachment(t *testing.T) {
	t.Parallel()

	if msg := ValidateAttachment(nil); msg != "" {
		t.Fatalf("no attachment is valid, got %q", msg)
	}

	if msg := ValidateAttachment(&AttachmentIn{Name: "", InlineData: "aGk="}); msg == "" {
		t.Fatal("expected missing name rejected")
	}
	if msg := ValidateAttachment(&AttachmentIn{Name: "a.txt"}); msg == "" {
		t.Fatal("expected missing content rejected")
	}
	if msg := ValidateAttachment(&AttachmentIn{Name: "a.txt", InlineData: "!!not base64!!"}); msg == "" {
		t.Fatal("expected invalid base64 rejected")
	}

	atLimit := base64.StdEncoding.EncodeToString(make([]byte, AttachmentMaxSize))
	if msg := ValidateAttachment(&AttachmentIn{Name: "big.bin", InlineData: atLimit}); msg != "" {
		t.Fatalf("expected attachment at the limit accepted, got %q", msg)
	}

	oneOver := base64.StdEncoding.EncodeToString(make([]byte, AttachmentMaxSize+1))
	if msg := ValidateAttachment(&AttachmentIn{Name: "big.bin", InlineData: oneOver}); msg == "" {
		t.Fatal("expected attachment one byte over the limit rejected")
	}
}

func TestParseStatusAndCategory(t *testing.T) {
	t.Parallel()

	if st, ok := ParseStatus(" Pending "); !ok || st != core.StatusPending {
		t.Fatalf("expected pending, got %q ok=%v", st, ok)
	}
	if _, ok := ParseStatus("archived"); ok {
		t.Fatal("expected unknown status rejected")
	}

	if c, ok := ParseCategory("urgent"); !ok || c != core.CategoryUrgent {
		t.Fatalf("expected Urgent, got %q ok=%v", c, ok)
	}
	if _, ok := ParseCategory("Hobby"); ok {
		t.Fatal("expected unknown category rejected")
	}
}
