// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (dial state, key schedules, cipher requests) and
// contracts (service interfaces) only.
package domain
