/*
Package token implements UNN governance token contract.

UNN is a NEP-17 compatible token with 18 decimals. Besides plain balances it
keeps a list of time-locks per account: tokens received with TransferAndLock
or TransferFromAndLock are part of the recipient balance but can't be spent
until the lock release time. Contract recipients get onNEP17Payment for
locked transfers as well, with nil data. Locks are never removed, expired ones are just
ignored when balances are calculated, so BalanceOf always returns the amount
spendable at the current block time.

Locks may be votable. Votable locks are counted in the voting power of the
holder together with its spendable balance. Voting power can be delegated to
another account, delegation is exactly one hop deep.

Until governance enables transfers with SetCanTransfer, only accounts with
allocator role can move tokens. Depending on the reversion flag, failed
transfer and allowance operations either abort the transaction or return
false.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. Produced on every allowance change.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

Lock notification. Produced when transferred tokens are locked on the
recipient account.

	Lock:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: releaseTime
	    type: Integer
	  - name: votable
	    type: Boolean

DelegateChanged notification. Produced when an account changes its voting
delegate.

	DelegateChanged:
	  - name: delegator
	    type: Hash160
	  - name: fromDelegate
	    type: Hash160
	  - name: toDelegate
	    type: Hash160

ConfigChanged notification. Produced when transfer or reversion toggles are
changed.

	ConfigChanged:
	  - name: canTransfer
	    type: Boolean
	  - name: reversion
	    type: Boolean

RoleGranted and RoleRevoked notifications. Produced on role membership changes.

	RoleGranted:
	  - name: role
	    type: String
	  - name: account
	    type: Hash160
*/
package token
