package toast

// queue is a bounded FIFO of pending toast requests. It is not safe for
// concurrent use; the Controller's mutex guards it.
type queue struct {
	items []Request
	limit int
}

func newQueue(limit int) *queue {
	return &queue{limit: limit}
}

// push appends req and reports whether it was accepted. Requests with a
// blank message or arriving while the queue is at capacity are refused.
func (q *queue) push(req Request) bool {
	if req.Message == "" {
		return false
	}
	if len(q.items) >= q.limit {
		return false
	}
	q.items = append(q.items, req)
	return true
}

// pop removes and returns the oldest request.
func (q *queue) pop() (Request, bool) {
	if len(q.items) == 0 {
		return Request{}, false
	}
	req := q.items[0]
	q.items = q.items[1:]
	return req, true
}

func (q *queue) len() int {
	return len(q.items)
}
