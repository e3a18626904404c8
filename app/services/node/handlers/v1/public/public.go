// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saksham0008/CryptoCurrency-Simulation/business/sys/metrics"
	"github.com/saksham0008/CryptoCurrency-Simulation/business/web/errs"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/state"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/events"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/nameservice"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log     *zap.SugaredLogger
	State   *state.State
	NS      *nameservice.NameService
	WS      websocket.Upgrader
	Evts    *events.Events
	Metrics *metrics.Metrics
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	// The upgrade has taken over the response.
	v.StatusCode = http.StatusSwitchingProtocols

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Balances returns the current balances for all accounts, or for the account
// in the path.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var bals database.Balances

	switch accountStr := web.Param(r, "account"); accountStr {
	case "":
		bals = h.State.RetrieveBalances()

	default:
		accountID, err := database.ToAccountID(accountStr)
		if err != nil {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
		bals = database.Balances{accountID: h.State.QueryBalance(accountID)}
	}

	out := balances{
		LatestBlock: h.State.RetrieveLatestBlock().Hash,
		Uncommitted: len(h.State.RetrieveMempool()),
		Balances:    make([]balance, 0, len(bals)),
	}

	for _, accountID := range bals.Accounts() {
		out.Balances = append(out.Balances, balance{
			Account: accountID,
			Name:    h.NS.Lookup(accountID),
			Balance: bals[accountID],
		})
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// Blocks returns the chain starting with genesis. When an account is in the
// path, only blocks holding a transaction for that account are returned.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	accountID := database.AccountID(web.Param(r, "account"))

	var out []block
	for _, blk := range h.State.RetrieveChain() {
		if accountID != "" && !involves(blk, accountID) {
			continue
		}

		trans := make([]tx, len(blk.Transactions))
		for i, tran := range blk.Transactions {
			trans[i] = h.toTx(tran)
		}

		out = append(out, block{
			Index:        blk.Index,
			TimeStamp:    blk.TimeStamp,
			Transactions: trans,
			PrevHash:     blk.PrevHash,
			Nonce:        blk.Nonce,
			Hash:         blk.Hash,
		})
	}

	if len(out) == 0 {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// History returns every mined transaction with the block holding it. The
// account query parameter limits the history to one account.
func (h Handlers) History(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	accountID := database.AccountID(r.URL.Query().Get("account"))

	history := h.State.QueryHistory(accountID)

	out := make([]historyTx, len(history))
	for i, htx := range history {
		out[i] = historyTx{
			tx:    h.toTx(htx.Tx),
			Block: htx.Block,
		}
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	mempool := h.State.RetrieveMempool()

	out := make([]tx, len(mempool))
	for i, tran := range mempool {
		out[i] = h.toTx(tran)
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// SendTransaction admits a new transaction into the mempool and writes the
// ledger to storage.
func (h Handlers) SendTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req sendRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	sender := database.AccountID(req.Sender)
	if sender.IsMiner() {
		h.Metrics.AddRejected("reserved_sender")
		return errs.NewTrusted(fmt.Errorf("sender %s is reserved for mining rewards", sender), http.StatusBadRequest)
	}

	h.Log.Infow("send tran", "traceid", v.TraceID, "sender", sender, "recipient", req.Recipient, "amount", req.Amount)

	tran, err := h.State.SubmitTransaction(sender, database.AccountID(req.Recipient), *req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrInvalidAmount):
			h.Metrics.AddRejected("invalid_amount")
			return errs.NewTrusted(err, http.StatusBadRequest)

		case errors.Is(err, state.ErrInvalidAccount):
			h.Metrics.AddRejected("invalid_account")
			return errs.NewTrusted(err, http.StatusBadRequest)

		case errors.Is(err, state.ErrInsufficientFunds):
			h.Metrics.AddRejected("insufficient_funds")
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
		return err
	}
	h.Metrics.AddAdmitted()

	if err := h.State.Persist(); err != nil {
		return err
	}

	return web.Respond(ctx, w, h.toTx(tran), http.StatusOK)
}

// Mine seals the mempool into a new block paying the reward to the miner.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req mineRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	miner, err := database.ToAccountID(req.Miner)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Log.Infow("mine block", "traceid", v.TraceID, "miner", miner)

	// A block that is half mined when the client goes away is still mined.
	start := time.Now()
	blk, err := h.State.MineNewBlock(context.WithoutCancel(ctx), miner)

	// A block that failed to persist is still on the chain.
	if blk.Hash != "" {
		h.Metrics.AddBlock(blk.Index, time.Since(start))
	}

	if err != nil {
		if errors.Is(err, state.ErrNothingToMine) {
			return web.Respond(ctx, w, status{Status: err.Error()}, http.StatusOK)
		}
		return err
	}

	trans := make([]tx, len(blk.Transactions))
	for i, tran := range blk.Transactions {
		trans[i] = h.toTx(tran)
	}

	out := block{
		Index:        blk.Index,
		TimeStamp:    blk.TimeStamp,
		Transactions: trans,
		PrevHash:     blk.PrevHash,
		Nonce:        blk.Nonce,
		Hash:         blk.Hash,
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// CreateAccount creates a new wallet holding the starting grant.
func (h Handlers) CreateAccount(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	acct, err := h.State.CreateAccount()
	if err != nil {
		return err
	}

	out := account{
		Account:   acct.AccountID,
		Grant:     acct.Grant,
		TimeStamp: acct.TimeStamp,
	}

	return web.Respond(ctx, w, out, http.StatusCreated)
}

// =============================================================================

// decode reads the request body, reporting a malformed body as the client's
// mistake.
func decode(r *http.Request, val any) error {
	err := web.Decode(r, val)
	if err == nil || web.IsFieldErrors(err) {
		return err
	}

	return errs.NewTrusted(err, http.StatusBadRequest)
}

func (h Handlers) toTx(tran database.Tx) tx {
	return tx{
		Sender:        tran.Sender,
		SenderName:    h.NS.Lookup(tran.Sender),
		Recipient:     tran.Recipient,
		RecipientName: h.NS.Lookup(tran.Recipient),
		Amount:        tran.Amount,
		TimeStamp:     tran.TimeStamp,
	}
}

func involves(blk database.Block, accountID database.AccountID) bool {
	for _, tran := range blk.Transactions {
		if tran.Sender == accountID || tran.Recipient == accountID {
			return true
		}
	}
	return false
}
