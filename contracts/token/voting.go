package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/unionprotocol/unn-contract/common"
)

// votableBalance is spendable balance plus active votable locks.
func votableBalance(ctx storage.Context, addr interop.Hash160, now int) int {
	sum := spendableBalance(ctx, addr, now)

	locks := getLocks(ctx, addr)
	for i := range locks {
		if locks[i].Votable && locks[i].ReleaseTime > now {
			sum += locks[i].Amount
		}
	}

	return sum
}

func getDelegate(ctx storage.Context, addr interop.Hash160) interop.Hash160 {
	target := common.GetHash160(ctx, common.AccountKey(delegatePrefix, addr))
	if target == nil {
		return addr
	}

	return target
}

// VotableBalanceOf returns spendable balance of the account plus the sum of
// its active votable locks.
func VotableBalanceOf(account interop.Hash160) int {
	common.CheckAddress(account)
	return votableBalance(storage.GetReadOnlyContext(), account, runtime.GetTime())
}

// GetVotingDelegate returns the account voting power is delegated to. It is
// the account itself if there is no delegation.
func GetVotingDelegate(account interop.Hash160) interop.Hash160 {
	common.CheckAddress(account)
	return getDelegate(storage.GetReadOnlyContext(), account)
}

// GetDelegators returns accounts that delegated their votes to the account.
func GetDelegators(account interop.Hash160) []interop.Hash160 {
	common.CheckAddress(account)

	ctx := storage.GetReadOnlyContext()
	res := []interop.Hash160{}

	it := storage.Find(ctx, common.AccountKey(delegatorPrefix, account), storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		res = append(res, iterator.Value(it).(interop.Hash160))
	}

	return res
}

// VotingPower returns votable balance of the account plus votable balances
// of all accounts delegating to it. Delegation is one hop only, and
// delegating away does not reduce the value reported for the delegator.
func VotingPower(account interop.Hash160) int {
	common.CheckAddress(account)

	ctx := storage.GetReadOnlyContext()
	now := runtime.GetTime()
	power := votableBalance(ctx, account, now)

	it := storage.Find(ctx, common.AccountKey(delegatorPrefix, account), storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		power += votableBalance(ctx, iterator.Value(it).(interop.Hash160), now)
	}

	return power
}

// DelegateVote delegates voting power of the account to the target. Target
// equal to the account resets delegation. It must be signed by the account.
//
// It produces DelegateChanged notification.
func DelegateVote(account, target interop.Hash160) {
	common.CheckAddress(account)
	common.CheckAddress(target)
	common.CheckWitness(account)

	ctx := storage.GetContext()
	prev := getDelegate(ctx, account)
	if prev.Equals(target) {
		return
	}

	if !prev.Equals(account) {
		storage.Delete(ctx, common.AccountKey(delegatorPrefix, prev, account))
	}

	if target.Equals(account) {
		storage.Delete(ctx, common.AccountKey(delegatePrefix, account))
	} else {
		storage.Put(ctx, common.AccountKey(delegatePrefix, account), target)
		storage.Put(ctx, common.AccountKey(delegatorPrefix, target, account), []byte{1})
	}

	runtime.Notify("DelegateChanged", account, prev, target)
}
