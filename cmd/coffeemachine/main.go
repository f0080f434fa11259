package main

import (
	"context"
	"os"

	"github.com/agbru/coffeemachine/internal/app"
	apperrors "github.com/agbru/coffeemachine/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		code := apperrors.ExitCodeFor(err)
		if code == apperrors.ExitSuccess {
			code = apperrors.ExitErrorGeneric
		}
		os.Exit(code)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
