package main

import "github.com/roceil/SL-Delivery-Line-Liff/internal/line"

// WorkerMessage is the payload sent from API -> SQS -> Worker. It is the
// reduced webhook event plus nothing; the worker re-derives the reply from
// the keyword table.
type WorkerMessage = line.WebhookMessage
