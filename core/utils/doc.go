// Package utils provides small helpers shared by the features: slug generation
// and conversion of fixed-point money amounts at the API boundary.
package utils
