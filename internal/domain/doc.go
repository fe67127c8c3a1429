// Package domain defines core data models, interfaces and error kinds shared
// across the app. It contains plain types (wire/state) and contracts
// (interfaces) only; the concrete types live in the types and interfaces
// subpackages and are re-exported here.
package domain
