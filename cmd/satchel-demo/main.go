package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/mkruglov/satchel"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Fatal(err)
	}

	log, err := satchel.NewLogger(cfg.Production)
	if err != nil {
		stdlog.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, log, cfg); err != nil {
		stdlog.Fatal(err)
	}
}

func run(ctx context.Context, log satchel.Logger, cfg *Config) error {
	svc := satchel.DefaultService(log)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = svc.Stop(context.Background())
	}()

	// squares of the even numbers below 10
	var squares []int
	for x := 0; x < 10; x++ {
		if x%2 == 0 {
			squares = append(squares, x*x)
		}
	}

	if n := len(squares); n > 4 {
		log.Infof("got %d squares", n)
	}

	wordLengths := make(map[string]int)
	for _, w := range []string{"hello", "world", "golang"} {
		wordLengths[w] = len(w)
	}
	log.Debugf("word lengths: %v", wordLengths)

	users := satchel.NewStore[*satchel.User]()
	admin, err := satchel.NewUser(1, "Ada", "ada@example.com", "admin")
	if err != nil {
		return err
	}

	key := users.Put(admin)
	log.Infof("stored user %s under key %d", admin.Name, key)

	log.Infof("fibonacci below %d: %v", cfg.FibLimit, satchel.Collect(satchel.Fib(cfg.FibLimit)))
	log.Infof("status %s: %s", satchel.StatusCompleted, satchel.Describe(satchel.StatusCompleted))

	fetcherCfg, err := cfg.Fetch.fetcherConfig()
	if err != nil {
		return err
	}

	fetcher, err := satchel.NewFetcher(log, fetcherCfg)
	if err != nil {
		return err
	}

	fetch := satchel.Logged(log, "fetch", func(url string) (*satchel.Result, error) {
		return fetcher.Fetch(ctx, url)
	})

	timer := satchel.NewTimer(satchel.LogSink(log))

	defer fmt.Println("cleanup completed")

	err = timer.Measure("fetch "+cfg.Fetch.URL, func() error {
		res, err := fetch(cfg.Fetch.URL)
		if err != nil {
			return err
		}

		fmt.Println(res.RawString())
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, satchel.ErrFetchTimeout):
		fmt.Println("request timed out")
	default:
		fmt.Printf("error: %v\n", err)
	}

	return nil
}
