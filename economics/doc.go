/*
Package economics reproduces UNN sale pricing and lock reward formulas
off-chain with math/big.

Results are bit-for-bit equal to the ones computed by the sale and lock
contracts: the same integer operations are performed in the same order, so
the package can be used to preview purchases and rewards before sending a
transaction.
*/
package economics
