/*
Package escrow implements a two party booking escrow.

A depositor locks funds for a booking and names the counterparty that
may collect them. The counterparty collects the funds by presenting the
verification code agreed upon out of band. There is no refund, timeout
or arbitration path: an escrow is either released to its counterparty
or stays locked.

Every escrow is stored under a key derived from the booking identifier
and the counterparty address. The locked funds are held by the custody
address of that key in the cash ledger.

	open:    (none)  -> pending
	release: pending -> (destroyed)
*/
package escrow
