package cache

// lruNode is an element of lruList.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList is a doubly-linked recency list. Front is most recently used.
// Not thread-safe; the owning shard holds the lock.
type lruList[K comparable] struct {
	head, tail *lruNode[K]
	len        int
}

func (l *lruList[K]) Len() int { return l.len }

// PushFront inserts key as the most recently used entry.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	n := &lruNode[K]{key: key}
	l.linkFront(n)
	l.len++
	return n
}

// MoveToFront marks n as most recently used.
func (l *lruList[K]) MoveToFront(n *lruNode[K]) {
	if n == nil || n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// Remove drops n from the list.
func (l *lruList[K]) Remove(n *lruNode[K]) {
	if n == nil {
		return
	}
	l.unlink(n)
	l.len--
}

// RemoveOldest pops the least recently used key.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	n := l.tail
	if n == nil {
		var zero K
		return zero, false
	}
	l.Remove(n)
	return n.key, true
}

func (l *lruList[K]) linkFront(n *lruNode[K]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

func (l *lruList[K]) unlink(n *lruNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
