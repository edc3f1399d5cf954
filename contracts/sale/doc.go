/*
Package sale implements UNN token sale contract.

Sale contract sequences token generation, distribution of the generated
supply between predefined pools and the public sale where permitted buyers
exchange supported NEP-17 stablecoins for UNN tokens.

Every sellable token has a serial number. Price of the token grows linearly
with its serial number from 0.035 USD to 0.5 USD. The contract keeps the
serial number of the next token to be sold and computes the cost of a
purchase as a closed-form sum of the arithmetic series. The inverse, the
number of tokens affordable for a USD contribution, is computed with an
integer square root and is always rounded down.

Together with purchased tokens the buyer receives a bonus locked for the
bonus period (12 calendar months by default). The bonus lock is votable.

Lifecycle:
 1. PerformTokenGeneration moves the owner UNN balance to the contract
 2. TransferTokensToPredefinedAddresses distributes it between the pools
 3. StartSale and EndSale open and close the sale

# Contract notifications

TokensPurchased notification. Produced on every successful purchase, cost is
denominated in the stablecoin units.

	TokensPurchased:
	  - name: buyer
	    type: Hash160
	  - name: symbol
	    type: String
	  - name: quantity
	    type: Integer
	  - name: cost
	    type: Integer
	  - name: bonus
	    type: Integer

SaleStateChanged notification. Produced when the sale is opened or closed.

	SaleStateChanged:
	  - name: open
	    type: Boolean
*/
package sale
