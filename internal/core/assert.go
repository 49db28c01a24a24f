package core

// TestReporter is the minimal interface impmock needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// MustRegister registers responses for methodName, failing the test on a
// configuration error.
func MustRegister(t TestReporter, engine *Engine, methodName string, responses ...StubResponse) {
	t.Helper()

	err := engine.Register(methodName, responses...)
	if err != nil {
		t.Fatalf("%v", err)
	}
}

// MustVerify verifies methodName against count, failing the test with the
// expected and actual counts when it does not hold.
func MustVerify(t TestReporter, engine *Engine, methodName string, count VerifyCount) *Verified {
	t.Helper()

	verified, err := engine.Verify(methodName, count)
	if err != nil {
		t.Fatalf("%v", err)

		return nil
	}

	return verified
}

// MustVerifyNoMoreInteractions fails the test if any engine has unverified calls.
func MustVerifyNoMoreInteractions(t TestReporter, engines ...*Engine) {
	t.Helper()

	for _, engine := range engines {
		err := engine.VerifyNoMoreInteractions()
		if err != nil {
			t.Fatalf("%v", err)
		}
	}
}

// VerifyOnCleanup runs MustVerifyNoMoreInteractions on engines when the test
// completes. Reporters without Cleanup (anything but *testing.T and friends)
// are left alone and false is returned.
func VerifyOnCleanup(t TestReporter, engines ...*Engine) bool {
	registrar, ok := t.(cleanupRegistrar)
	if !ok {
		return false
	}

	registrar.Cleanup(func() {
		MustVerifyNoMoreInteractions(t, engines...)
	})

	return true
}

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}
