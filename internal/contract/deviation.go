package contract

import "github.com/alexanderramin/fieldbook/internal/app"

type DeviationResult = app.DeviationResult

type AnnualProgress = app.AnnualProgress

type DeviationRequest = app.DeviationRequest

type DeviationResponse = app.DeviationResponse
