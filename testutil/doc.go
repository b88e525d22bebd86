// Package testutil provides testing utilities for memaccess.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	buf := make([]byte, 64)
//	rng.Fill(buf)
//	v := rng.Int64()
//
// # Native Regions
//
//	m := testutil.Region(t, 4096) // unmapped by t.Cleanup
//	addr := m.Address()
//
// # Panics
//
//	err := testutil.PanicError(func() { s.CompareAndSwapInt(addr+1, 0, 1) })
//	require.ErrorIs(t, err, strategy.ErrMisalignedAtomicAccess)
package testutil
