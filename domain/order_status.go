package domain

import "strings"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type transition struct {
	From OrderStatus
	To   OrderStatus
}

var orderTransitions = []transition{
	{From: StatusPending, To: StatusConfirmed},
	{From: StatusPending, To: StatusCancelled},
	{From: StatusConfirmed, To: StatusShipped},
	{From: StatusConfirmed, To: StatusCancelled},
	{From: StatusShipped, To: StatusDelivered},
}

var transitionSet = func() map[transition]bool {
	m := make(map[transition]bool, len(orderTransitions))
	for _, t := range orderTransitions {
		m[t] = true
	}
	return m
}()

// NextStatuses returns the statuses reachable from s in one step.
func NextStatuses(s OrderStatus) []OrderStatus {
	var next []OrderStatus
	for _, t := range orderTransitions {
		if t.From == s {
			next = append(next, t.To)
		}
	}
	return next
}

// PreviousStatuses returns the statuses that may move to s in one step.
func PreviousStatuses(s OrderStatus) []OrderStatus {
	var prev []OrderStatus
	for _, t := range orderTransitions {
		if t.To == s {
			prev = append(prev, t.From)
		}
	}
	return prev
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) error {
	if transitionSet[transition{From: from, To: to}] {
		return nil
	}

	valid := "none"
	if next := NextStatuses(from); len(next) > 0 {
		names := make([]string, len(next))
		for i, s := range next {
			names[i] = string(s)
		}
		valid = strings.Join(names, ", ")
	}

	return Errorf(ErrBadRequest, "invalid transition %s -> %s, valid next states: %s", from, to, valid)
}
