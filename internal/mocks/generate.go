// Package mocks holds gomock doubles for the stores behind the request gate.
//
// To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=account_store_mock.go github.com/odyssey-erp/odyssey-warehouse/internal/auth AccountStore
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=grant_store_mock.go github.com/odyssey-erp/odyssey-warehouse/internal/rbac GrantStore
