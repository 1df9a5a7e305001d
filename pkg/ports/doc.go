/*
Package ports defines the driven ports (interfaces) for the iterlab facade.

These interfaces decouple the solve workflow from external implementations, allowing
results to be memoized in memory, in Redis, or not at all.

# Key Interfaces

  - ResultStore: Responsible for persisting and loading solve Records by request digest.
*/
package ports
