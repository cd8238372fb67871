package testkit

import "testing"

var userAgent = func() string { return "EmailValidator/1.0" }

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &userAgent, func() string { return "probe" })
		if got := userAgent(); got != "probe" {
			t.Fatalf("swap did not take effect, got %q", got)
		}
	})
	if got := userAgent(); got != "EmailValidator/1.0" {
		t.Fatalf("swap not restored, got %q", got)
	}
}

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("nil port") })
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, `{"domainReputation":null}`, "domainReputation")
}
