package core

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement returns the element that hosts this widget in the tree.
	CreateElement() Element
	// Key distinguishes siblings of the same type. Nil means no key.
	Key() any
}

// StatelessWidget builds its child purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a State that persists across rebuilds of the same
// element.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable part of a StatefulWidget. Embed StateBase to get
// default implementations of everything except Build.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// BuildContext is the handle a build function receives for its location
// in the tree.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular location in the
// tree. Elements own identity; widgets are replaced on every rebuild.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	Depth() int
}

// Disposable is implemented by controllers that release resources.
type Disposable interface {
	Dispose()
}
