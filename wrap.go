package satchel

// Logged wraps fn into a callable with the same contract that logs
// every invocation, its argument and its outcome.
func Logged[A, R any](log Logger, name string, fn func(A) (R, error)) func(A) (R, error) {
	return func(arg A) (R, error) {
		log.Debugf("calling %s with %v", name, arg)

		res, err := fn(arg)
		if err != nil {
			log.Errorf("%s failed: %v", name, err)
			return res, err
		}

		log.Debugf("%s returned %v", name, res)
		return res, nil
	}
}

// LoggedFunc is Logged for argument-free callables.
func LoggedFunc(log Logger, name string, fn func() error) func() error {
	return func() error {
		log.Debugf("calling %s", name)

		if err := fn(); err != nil {
			log.Errorf("%s failed: %v", name, err)
			return err
		}

		log.Debugf("%s returned", name)
		return nil
	}
}
