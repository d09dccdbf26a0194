// Package mocks provides gomock implementations of the task ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=reporter_mock.go github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline Reporter
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=object_storage_mock.go github.com/andresuchdata/deploy-pipeline-tasks/internal/storage ObjectStorage
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=invalidator_mock.go github.com/andresuchdata/deploy-pipeline-tasks/internal/cdn Invalidator
