/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Every verified signature is turned into a condition of the form
sigs/ed25519/<pubkey>, whose address identifies the signer everywhere
else in the application.
*/
package sigs
