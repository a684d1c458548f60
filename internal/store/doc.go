// Package store defines the interfaces and shared errors for data
// persistence. Concrete implementations live under platform/postgres;
// services depend only on the interfaces declared here so that storage
// backends can be swapped or mocked in tests.
package store
