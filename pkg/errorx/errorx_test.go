package errorx

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesCodeAndCause(t *testing.T) {
	cause := errors.New("record not found")
	err := Wrap(cause, CodeNotFound, "用户不存在")

	if GetCode(err) != CodeNotFound {
		t.Fatalf("want code %d, got %d", CodeNotFound, GetCode(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause must be reachable via errors.Is")
	}
	if err.Error() != "用户不存在: record not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestGetCodeDefaultsToServerBusy(t *testing.T) {
	if got := GetCode(errors.New("raw error")); got != CodeServerBusy {
		t.Fatalf("want %d for non-CodeError, got %d", CodeServerBusy, got)
	}
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	inner := New(CodeForbidden, "无权操作")
	outer := fmt.Errorf("handler: %w", inner)
	if got := GetCode(outer); got != CodeForbidden {
		t.Fatalf("want %d through %%w chain, got %d", CodeForbidden, got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(CodeNotFound, "missing")) {
		t.Fatal("CodeNotFound must be recognized")
	}
	if !IsNotFound(errors.New("record not found")) {
		t.Fatal("gorm-style message must be recognized")
	}
	if IsNotFound(New(CodeConflict, "conflict")) {
		t.Fatal("other codes must not be recognized as not found")
	}
	if IsNotFound(nil) {
		t.Fatal("nil is not a not-found error")
	}
}
