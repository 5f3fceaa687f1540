package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cfglang/cfg/lang"
	"github.com/cfglang/cfg/pkg"
)

// Browse opens an interactive viewer over the variable tree. Enter descends
// into an aggregate, backspace ascends, q quits.
type Browse struct {
	File string `default:"-" name:"file" help:"Source file or '-' for stdin" short:"f" type:"existingfile"`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) error {
	doc, err := loadSource(ctx, b.File)
	if err != nil {
		return err
	}

	program := tea.NewProgram(newBrowser(doc.Root()), tea.WithAltScreen())

	_, err = program.Run()

	return err
}

var browseTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("6")).
	Bold(true)

// treeItem adapts a Variable to the bubbles list item interface.
type treeItem struct {
	v   *lang.Variable
	idx int
}

// Title returns the member name, or the element index for unnamed items.
func (i treeItem) Title() string {
	if name := i.v.Name(); name != "" {
		return name
	}

	return "[" + strconv.Itoa(i.idx) + "]"
}

// Description renders the item's type and a short value preview.
func (i treeItem) Description() string {
	switch i.v.Type() {
	case lang.TypeArray, lang.TypeList, lang.TypeStruct:
		return i.v.Type().String() +
			" (" + strconv.Itoa(i.v.Len()) + " variables)"
	case lang.TypeString:
		return "string " + strconv.Quote(i.v.Raw())
	default:
		return i.v.Type().String() + " " + i.v.Raw()
	}
}

func (i treeItem) FilterValue() string { return i.Title() }

// browser is the Bubble Tea model: the current context's children in a list,
// plus the stack of ancestor contexts for ascending.
type browser struct {
	list  list.Model
	stack []*lang.Variable
}

func newBrowser(root *lang.Variable) *browser {
	l := list.New(itemsOf(root), list.NewDefaultDelegate(), 0, 0)
	l.Title = pkg.Name
	l.Styles.Title = browseTitleStyle

	return &browser{
		list:  l,
		stack: []*lang.Variable{root},
	}
}

func itemsOf(v *lang.Variable) []list.Item {
	items := make([]list.Item, 0, v.Len())

	idx := 0
	for child := range v.All() {
		items = append(items, treeItem{v: child, idx: idx})
		idx++
	}

	return items
}

func (b *browser) Init() tea.Cmd { return nil }

func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.list.SetSize(msg.Width, msg.Height)

		return b, nil

	case tea.KeyMsg:
		// Ignore navigation keys while the list filter is capturing input.
		if b.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit

		case "enter", "right":
			if item, ok := b.list.SelectedItem().(treeItem); ok {
				if item.v.Type().IsAggregate() {
					b.descend(item.v)
				}
			}

			return b, nil

		case "backspace", "left":
			b.ascend()

			return b, nil
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)

	return b, cmd
}

func (b *browser) View() string { return b.list.View() }

func (b *browser) descend(v *lang.Variable) {
	b.stack = append(b.stack, v)
	b.list.SetItems(itemsOf(v))
	b.list.ResetSelected()
	b.list.Title = b.breadcrumb()
}

func (b *browser) ascend() {
	if len(b.stack) == 1 {
		return
	}

	b.stack = b.stack[:len(b.stack)-1]
	b.list.SetItems(itemsOf(b.stack[len(b.stack)-1]))
	b.list.ResetSelected()
	b.list.Title = b.breadcrumb()
}

func (b *browser) breadcrumb() string {
	parts := []string{pkg.Name}

	for i, v := range b.stack {
		if i == 0 {
			continue
		}

		if name := v.Name(); name != "" {
			parts = append(parts, name)
		} else {
			parts = append(parts, v.Type().String())
		}
	}

	return strings.Join(parts, " › ")
}
