package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	mailConfigured bool
	fallbackDir    string
}

func NewHealthUsecase(mailConfigured bool, fallbackDir string) HealthUsecase {
	return &healthUsecase{
		mailConfigured: mailConfigured,
		fallbackDir:    fallbackDir,
	}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	mail := "configured"
	if !u.mailConfigured {
		mail = "not_configured"
	}
	return map[string]string{
		"status":   "ok",
		"mail":     mail,
		"fallback": fallbackDirState(u.fallbackDir),
	}
}

// fallbackDirState does not create the directory; that happens on the first failed send
func fallbackDirState(dir string) string {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "not_created"
	case err != nil:
		return "unavailable"
	case !info.IsDir():
		return "not_a_directory"
	default:
		return "ready"
	}
}
