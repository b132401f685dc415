// Package services holds domain services that do not belong to a single
// aggregate: the pricing engine and the client notification catalogue.
package services
