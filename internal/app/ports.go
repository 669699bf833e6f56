package app

import "context"

type DashboardUseCase interface {
	Dashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type ComparisonUseCase interface {
	Compare(ctx context.Context, req ComparisonRequest) (*ComparisonResponse, error)
}

type DeviationUseCase interface {
	ForProject(ctx context.Context, req DeviationRequest) (*DeviationResponse, error)
}
