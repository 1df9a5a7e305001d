/*
Package observability provides monitoring for iterlab solves.

Metrics exposes Prometheus collectors fed by domain.LifecycleHooks, and
Aggregate fans a single hook slot out to several listeners (metrics, audit
logging, tests).
*/
package observability
