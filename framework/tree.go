package framework

// Group is a named container of tests and other groups. Groups are built entirely before a
// run starts; nothing registered here is executed until Run walks the tree.
type Group struct {
	name     string
	setup    func(*T)
	children []node
}

type node interface {
	nodeName() string
}

type testCase struct {
	name string
	body func(*T)
}

func (g *Group) nodeName() string    { return g.name }
func (c *testCase) nodeName() string { return c.name }

// NewSuite returns an unnamed root group.
func NewSuite() *Group {
	return &Group{}
}

func (g *Group) Name() string {
	return g.name
}

// Describe adds a nested group. The build function is called immediately to register the
// group's contents.
func (g *Group) Describe(name string, build func(*Group)) *Group {
	child := &Group{name: name}
	g.children = append(g.children, child)
	if build != nil {
		build(child)
	}
	return child
}

// Test adds a leaf test whose body runs when the tree is walked.
func (g *Group) Test(name string, body func(*T)) {
	g.children = append(g.children, &testCase{name: name, body: body})
}

// It is an alias for Test.
func (g *Group) It(name string, body func(*T)) {
	g.Test(name, body)
}

// Setup sets a function that runs when the group starts, before any of its children. The
// *T it receives reports like a test named "setup"; anything it defers runs after the last
// child of the group has finished. If setup fails, the group's children are not run.
func (g *Group) Setup(fn func(*T)) {
	g.setup = fn
}

// Groups returns the names of the direct child groups, in registration order.
func (g *Group) Groups() []string {
	var names []string
	for _, c := range g.children {
		if child, ok := c.(*Group); ok {
			names = append(names, child.name)
		}
	}
	return names
}
