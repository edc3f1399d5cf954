/*
Package lock implements UNN voluntary lock contract.

Holders lock their UNN tokens for a number of days and get a reward for it.
Annual yield depends on the lock period (25% from 30 days, 30% from 60 days,
40% from 120 days by default) and is compounded daily, 365 times a year. The
reward is computed once, on deposit, and locked together with the principal
as a single votable lock, so it counts in the holder voting power right away.

# Contract notifications

TokensLocked notification. Produced on every successful lock.

	TokensLocked:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: reward
	    type: Integer
	  - name: releaseTime
	    type: Integer
*/
package lock
