// Package mocks holds GoMock doubles for the algorithm interfaces.
//
//go:generate mockgen -destination=mock_summer.go -package=mocks github.com/agbru/loopkata/internal/summation Summer
//go:generate mockgen -destination=mock_calculator.go -package=mocks github.com/agbru/loopkata/internal/fibonacci Calculator
package mocks
