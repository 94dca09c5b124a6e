package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/keylink/internal/model"
)

func TestRegistry(t *testing.T) {
	d := model.NewDocumentFromText("foo", model.WithSelection(model.Select(0, 3)))
	reg := NewRegistry()

	if err := reg.Add(NewLink(d, nil)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(NewUnlink(d, nil)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(NewLink(d, nil)); !errors.Is(err, ErrDuplicateCommand) {
		t.Errorf("duplicate Add error = %v, want ErrDuplicateCommand", err)
	}

	if got := strings.Join(reg.Names(), ","); got != "link,unlink" {
		t.Errorf("Names() = %s", got)
	}

	if err := reg.Execute("link", "url"); err != nil {
		t.Fatalf("Execute(link) failed: %v", err)
	}
	unlink, _ := reg.Get("unlink")
	if !unlink.IsEnabled() {
		t.Error("unlink should be enabled after linking the selection")
	}

	if err := reg.Execute("bold"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Execute(bold) error = %v, want ErrUnknownCommand", err)
	}

	err := reg.Execute("link", "")
	if !errors.Is(err, ErrDisabled) || !strings.Contains(err.Error(), "execute link") {
		t.Errorf("Execute(link, \"\") error = %v", err)
	}

	if !reg.Remove("unlink") || reg.Remove("unlink") {
		t.Error("Remove should report true once")
	}
}
