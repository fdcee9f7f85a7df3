// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/ledger"
)

// Token - ledger calls
type Token struct {
	log     *logger.L
	limiter *rate.Limiter
}

// Issue an external token
// -----------------------

// TokenIssueArguments - arguments for attaching an external token
type TokenIssueArguments struct {
	Caller    *account.Account  `json:"caller"` // base58
	Entity    uint64            `json:"entity"`
	Name      string            `json:"name"`
	Symbol    string            `json:"symbol"`
	Signature account.Signature `json:"signature"`
}

// TokenIssueReply - the created token descriptor
type TokenIssueReply struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Issue - create and attach the external token for an entity
func (t *Token) Issue(arguments *TokenIssueArguments, reply *TokenIssueReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	log := t.log

	log.Infof("Token.Issue: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}

	err := verifyRequest(arguments.Caller, arguments.Signature, "Token.Issue",
		uint64Bytes(arguments.Entity),
		[]byte(arguments.Name),
		[]byte(arguments.Symbol),
	)
	if nil != err {
		return err
	}

	token, err := ledger.Issue(arguments.Caller, arguments.Entity, arguments.Name, arguments.Symbol)
	if nil != err {
		return err
	}

	reply.Name = token.Name()
	reply.Symbol = token.Symbol()
	return nil
}

// Mint
// ----

// TokenMintArguments - arguments for minting to a holder
type TokenMintArguments struct {
	Caller        *account.Account  `json:"caller"` // base58
	Holder        *account.Account  `json:"holder"` // base58
	Entity        uint64            `json:"entity"`
	Amount        uint64            `json:"amount"`
	PreferClaimed bool              `json:"prefer_claimed"`
	Signature     account.Signature `json:"signature"`
}

// TokenMintReply - resulting balances for the holder
type TokenMintReply struct {
	Balance   uint64 `json:"balance"`
	Unclaimed uint64 `json:"unclaimed"`
}

// Mint - create new funds for a holder, the entity's controller only
func (t *Token) Mint(arguments *TokenMintArguments, reply *TokenMintReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	log := t.log

	log.Infof("Token.Mint: %+v", arguments)

	if nil == arguments || nil == arguments.Holder {
		return fault.InvalidItem
	}

	err := verifyRequest(arguments.Caller, arguments.Signature, "Token.Mint",
		arguments.Holder.Bytes(),
		uint64Bytes(arguments.Entity),
		uint64Bytes(arguments.Amount),
		boolByte(arguments.PreferClaimed),
	)
	if nil != err {
		return err
	}

	err = ledger.Mint(arguments.Caller, arguments.Holder, arguments.Entity, arguments.Amount, arguments.PreferClaimed)
	if nil != err {
		return err
	}

	return t.fillBalances(arguments.Holder, arguments.Entity, &reply.Balance, &reply.Unclaimed)
}

// Burn
// ----

// TokenBurnArguments - arguments for destroying a holder's funds
type TokenBurnArguments struct {
	Caller        *account.Account  `json:"caller"` // base58
	Holder        *account.Account  `json:"holder"` // base58
	Entity        uint64            `json:"entity"`
	Amount        uint64            `json:"amount"`
	PreferClaimed bool              `json:"prefer_claimed"`
	Signature     account.Signature `json:"signature"`
}

// TokenBurnReply - resulting balances for the holder
type TokenBurnReply struct {
	Balance   uint64 `json:"balance"`
	Unclaimed uint64 `json:"unclaimed"`
}

// Burn - destroy funds across both representations, controller only
func (t *Token) Burn(arguments *TokenBurnArguments, reply *TokenBurnReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	log := t.log

	log.Infof("Token.Burn: %+v", arguments)

	if nil == arguments || nil == arguments.Holder {
		return fault.InvalidItem
	}

	err := verifyRequest(arguments.Caller, arguments.Signature, "Token.Burn",
		arguments.Holder.Bytes(),
		uint64Bytes(arguments.Entity),
		uint64Bytes(arguments.Amount),
		boolByte(arguments.PreferClaimed),
	)
	if nil != err {
		return err
	}

	err = ledger.Burn(arguments.Caller, arguments.Holder, arguments.Entity, arguments.Amount, arguments.PreferClaimed)
	if nil != err {
		return err
	}

	return t.fillBalances(arguments.Holder, arguments.Entity, &reply.Balance, &reply.Unclaimed)
}

// Claim
// -----

// TokenClaimArguments - arguments for converting unclaimed funds
//
// the holder signs for itself; claiming never needs a grant
type TokenClaimArguments struct {
	Holder    *account.Account  `json:"holder"` // base58
	Entity    uint64            `json:"entity"`
	Amount    uint64            `json:"amount"`
	Signature account.Signature `json:"signature"`
}

// TokenClaimReply - resulting balances for the holder
type TokenClaimReply struct {
	Balance   uint64 `json:"balance"`
	Unclaimed uint64 `json:"unclaimed"`
}

// Claim - convert a holder's unclaimed funds into external tokens
func (t *Token) Claim(arguments *TokenClaimArguments, reply *TokenClaimReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	log := t.log

	log.Infof("Token.Claim: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}

	err := verifyRequest(arguments.Holder, arguments.Signature, "Token.Claim",
		uint64Bytes(arguments.Entity),
		uint64Bytes(arguments.Amount),
	)
	if nil != err {
		return err
	}

	err = ledger.Claim(arguments.Holder, arguments.Holder, arguments.Entity, arguments.Amount)
	if nil != err {
		return err
	}

	return t.fillBalances(arguments.Holder, arguments.Entity, &reply.Balance, &reply.Unclaimed)
}

// Transfer
// --------

// TokenTransferArguments - arguments for moving unclaimed funds
type TokenTransferArguments struct {
	Caller    *account.Account  `json:"caller"`    // base58
	Holder    *account.Account  `json:"holder"`    // base58
	Recipient *account.Account  `json:"recipient"` // base58
	Entity    uint64            `json:"entity"`
	Amount    uint64            `json:"amount"`
	Signature account.Signature `json:"signature"`
}

// TokenTransferReply - resulting unclaimed balances
type TokenTransferReply struct {
	HolderUnclaimed    uint64 `json:"holder_unclaimed"`
	RecipientUnclaimed uint64 `json:"recipient_unclaimed"`
}

// Transfer - move unclaimed funds between holders
func (t *Token) Transfer(arguments *TokenTransferArguments, reply *TokenTransferReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	log := t.log

	log.Infof("Token.Transfer: %+v", arguments)

	if nil == arguments || nil == arguments.Holder || nil == arguments.Recipient {
		return fault.InvalidItem
	}

	err := verifyRequest(arguments.Caller, arguments.Signature, "Token.Transfer",
		arguments.Holder.Bytes(),
		arguments.Recipient.Bytes(),
		uint64Bytes(arguments.Entity),
		uint64Bytes(arguments.Amount),
	)
	if nil != err {
		return err
	}

	err = ledger.TransferUnclaimed(arguments.Caller, arguments.Recipient, arguments.Holder, arguments.Entity, arguments.Amount)
	if nil != err {
		return err
	}

	holderUnclaimed, err := ledger.UnclaimedBalanceOf(arguments.Holder, arguments.Entity)
	if nil != err {
		return err
	}
	recipientUnclaimed, err := ledger.UnclaimedBalanceOf(arguments.Recipient, arguments.Entity)
	if nil != err {
		return err
	}
	reply.HolderUnclaimed = holderUnclaimed
	reply.RecipientUnclaimed = recipientUnclaimed
	return nil
}

// Claim requirement flag
// ----------------------

// TokenRequireClaimArguments - arguments for flipping the claim flag
type TokenRequireClaimArguments struct {
	Caller    *account.Account  `json:"caller"` // base58
	Entity    uint64            `json:"entity"`
	Flag      bool              `json:"flag"`
	Signature account.Signature `json:"signature"`
}

// TokenRequireClaimReply - the stored flag after the call
type TokenRequireClaimReply struct {
	Flag bool `json:"flag"`
}

// RequireClaim - force future mints into the external token directly
func (t *Token) RequireClaim(arguments *TokenRequireClaimArguments, reply *TokenRequireClaimReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	log := t.log

	log.Infof("Token.RequireClaim: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}

	err := verifyRequest(arguments.Caller, arguments.Signature, "Token.RequireClaim",
		uint64Bytes(arguments.Entity),
		boolByte(arguments.Flag),
	)
	if nil != err {
		return err
	}

	err = ledger.SetRequireClaim(arguments.Caller, arguments.Entity, arguments.Flag)
	if nil != err {
		return err
	}

	reply.Flag = arguments.Flag
	return nil
}

// Reads
// -----

// TokenSupplyArguments - arguments for a total supply query
type TokenSupplyArguments struct {
	Entity uint64 `json:"entity"`
}

// TokenSupplyReply - unclaimed pool plus external token supply
type TokenSupplyReply struct {
	Supply uint64 `json:"supply"`
}

// Supply - total funds an entity has outstanding
func (t *Token) Supply(arguments *TokenSupplyArguments, reply *TokenSupplyReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	supply, err := ledger.TotalSupply(arguments.Entity)
	if nil != err {
		return err
	}
	reply.Supply = supply
	return nil
}

// TokenBalanceArguments - arguments for a balance query
type TokenBalanceArguments struct {
	Holder *account.Account `json:"holder"` // base58
	Entity uint64           `json:"entity"`
}

// TokenBalanceReply - combined and unclaimed balances for a holder
type TokenBalanceReply struct {
	Balance   uint64 `json:"balance"`
	Unclaimed uint64 `json:"unclaimed"`
}

// Balance - a holder's funds across both representations
func (t *Token) Balance(arguments *TokenBalanceArguments, reply *TokenBalanceReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Holder {
		return fault.InvalidItem
	}

	return t.fillBalances(arguments.Holder, arguments.Entity, &reply.Balance, &reply.Unclaimed)
}

// TokenStatusArguments - arguments for an issuance status query
type TokenStatusArguments struct {
	Entity uint64 `json:"entity"`
}

// TokenStatusReply - issuance and claim flag status
type TokenStatusReply struct {
	Issued       bool `json:"issued"`
	RequireClaim bool `json:"require_claim"`
}

// Status - whether an entity has issued a token and requires claiming
func (t *Token) Status(arguments *TokenStatusArguments, reply *TokenStatusReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	issued, err := ledger.IsIssued(arguments.Entity)
	if nil != err {
		return err
	}
	requireClaim, err := ledger.RequiresClaim(arguments.Entity)
	if nil != err {
		return err
	}
	reply.Issued = issued
	reply.RequireClaim = requireClaim
	return nil
}

// common balance fill for mutating replies
func (t *Token) fillBalances(holder *account.Account, entity uint64, balance *uint64, unclaimed *uint64) error {
	combined, err := ledger.BalanceOf(holder, entity)
	if nil != err {
		return err
	}
	pool, err := ledger.UnclaimedBalanceOf(holder, entity)
	if nil != err {
		return err
	}
	*balance = combined
	*unclaimed = pool
	return nil
}
