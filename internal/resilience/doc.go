// Package resilience groups fault-tolerance helpers for the storage path.
//
// The circuitbreaker subpackage wraps a repository.Handle with a
// sony/gobreaker breaker that opens after repeated connection failures.
// Nothing in this tree retries a failed operation.
package resilience
