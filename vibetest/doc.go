/*
Package vibetest provides mocks and helpers for testing vibe extensions.

None of this code should be used outside of tests.
*/
package vibetest
