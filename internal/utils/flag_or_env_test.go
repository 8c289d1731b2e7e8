package utils

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

// Flags register on the global flag.CommandLine, so every test case uses a
// unique flag name. The bound variable receives the resolved default at
// registration time, before any Parse.

func TestStringFlagOrEnv(t *testing.T) {
	g := NewWithT(t)

	var v string
	StringFlagOrEnv(&v, "test-string-default", "TEST_STRING_UNSET", ":8080", "")
	g.Expect(v).To(Equal(":8080"))

	t.Setenv("TEST_STRING_SET", ":9090")
	StringFlagOrEnv(&v, "test-string-env", "TEST_STRING_SET", ":8080", "")
	g.Expect(v).To(Equal(":9090"))
}

func TestBoolFlagOrEnv(t *testing.T) {
	g := NewWithT(t)

	var v bool
	BoolFlagOrEnv(&v, "test-bool-default", "TEST_BOOL_UNSET", false, "")
	g.Expect(v).To(BeFalse())

	t.Setenv("TEST_BOOL_SET", "true")
	BoolFlagOrEnv(&v, "test-bool-env", "TEST_BOOL_SET", false, "")
	g.Expect(v).To(BeTrue())

	t.Setenv("TEST_BOOL_GARBAGE", "not-a-bool")
	BoolFlagOrEnv(&v, "test-bool-garbage", "TEST_BOOL_GARBAGE", false, "")
	g.Expect(v).To(BeFalse())
}

func TestIntFlagOrEnv(t *testing.T) {
	g := NewWithT(t)

	var v int
	IntFlagOrEnv(&v, "test-int-default", "TEST_INT_UNSET", 32, "")
	g.Expect(v).To(Equal(32))

	t.Setenv("TEST_INT_SET", "64")
	IntFlagOrEnv(&v, "test-int-env", "TEST_INT_SET", 32, "")
	g.Expect(v).To(Equal(64))

	t.Setenv("TEST_INT_GARBAGE", "many")
	IntFlagOrEnv(&v, "test-int-garbage", "TEST_INT_GARBAGE", 32, "")
	g.Expect(v).To(Equal(32))
}

func TestDurationFlagOrEnv(t *testing.T) {
	g := NewWithT(t)

	var v time.Duration
	DurationFlagOrEnv(&v, "test-duration-default", "TEST_DURATION_UNSET", 5*time.Minute, "")
	g.Expect(v).To(Equal(5 * time.Minute))

	t.Setenv("TEST_DURATION_SET", "90s")
	DurationFlagOrEnv(&v, "test-duration-env", "TEST_DURATION_SET", 5*time.Minute, "")
	g.Expect(v).To(Equal(90 * time.Second))
}
