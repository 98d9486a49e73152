package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/cartui/catalog"
	"github.com/qyinm/cartui/dealer"
	"github.com/qyinm/cartui/types"
)

type fakeSource struct {
	cars        []types.Car
	details     map[string]types.CarDetail
	failCatalog bool
	failDetail  bool
	detailCalls []string
}

func (f *fakeSource) GetCatalog(ctx context.Context) ([]types.Car, error) {
	if f.failCatalog {
		return nil, &dealer.FetchError{Message: dealer.MsgCatalogFailed, Err: errors.New("HTTP 500")}
	}
	return f.cars, nil
}

func (f *fakeSource) GetCarDetail(ctx context.Context, id string) (types.CarDetail, error) {
	f.detailCalls = append(f.detailCalls, id)
	if f.failDetail {
		return types.CarDetail{}, &dealer.FetchError{Message: dealer.MsgDetailFailed, Err: errors.New("HTTP 404")}
	}
	d, ok := f.details[id]
	if !ok {
		return types.CarDetail{}, &dealer.FetchError{Message: dealer.MsgDetailFailed}
	}
	return d, nil
}

// fifteenCars returns 15 cars priced $5,000..$47,000, two of which are Toyotas.
func fifteenCars() []types.Car {
	makes := []string{"Honda", "Ford", "Toyota", "Chevrolet", "Nissan", "BMW", "Audi", "Kia", "Hyundai", "Toyota", "Mazda", "Subaru", "Tesla", "Volvo", "Jeep"}
	models := []string{"Civic", "Focus", "Corolla", "Malibu", "Altima", "X3", "A4", "Soul", "Elantra", "Camry", "CX-5", "Outback", "Model 3", "XC60", "Wrangler"}
	cars := make([]types.Car, 0, len(makes))
	for i := range makes {
		cars = append(cars, types.NewCar(fmt.Sprint(i+1), makes[i], models[i], 2010+i, float64(5000+3000*i), "https://img.example/"+fmt.Sprint(i+1)+".jpg"))
	}
	return cars
}

func newFakeSource() *fakeSource {
	cars := fifteenCars()
	details := make(map[string]types.CarDetail, len(cars))
	for _, c := range cars {
		details[c.ID()] = types.NewCarDetail(c, 42000, "Used", "Gasoline", "Automatic", "Blue", "VIN"+c.ID(), "Clean title, "+c.Title())
	}
	return &fakeSource{cars: cars, details: details}
}

func testOptions() Options {
	return Options{FilterMode: catalog.Exclusive, PriceMin: 0, PriceMax: 50000, PriceStep: 1000}
}

// loadedModel returns a model that has received its catalog.
func loadedModel(t *testing.T, src *fakeSource) Model {
	t.Helper()
	m := NewModel(context.Background(), src, testOptions())
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	msg := fetchCatalog(context.Background(), src)()
	return update(t, m, msg)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want ui.Model", next)
	}
	return nm
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, runes(string(r)))
	}
	return m
}

func filteredIDs(m Model) []string {
	out := []string{}
	for _, c := range m.Catalog().Filtered() {
		out = append(out, c.ID())
	}
	return out
}

func TestInitFetchesCatalog(t *testing.T) {
	m := NewModel(context.Background(), newFakeSource(), testOptions())
	if m.Init() == nil {
		t.Fatal("Init should return a command")
	}
	if m.State() != LoadingView {
		t.Errorf("state: got %v want LoadingView", m.State())
	}
	if !strings.Contains(m.View(), "Loading") {
		t.Error("loading view should mention loading")
	}
}

func TestCatalogLoaded(t *testing.T) {
	m := loadedModel(t, newFakeSource())

	if m.State() != ListView {
		t.Fatalf("state: got %v want ListView", m.State())
	}
	if got := len(m.Catalog().Filtered()); got != 15 {
		t.Fatalf("filtered: got %d want 15", got)
	}
	if m.Catalog().Page() != 1 {
		t.Errorf("page: got %d want 1", m.Catalog().Page())
	}

	view := m.View()
	if !strings.Contains(view, "Honda Civic") {
		t.Error("first card missing")
	}
	if !strings.Contains(view, "Price: $5,000") {
		t.Error("formatted price missing")
	}
	if !strings.Contains(view, "Year: 2010") {
		t.Error("year missing")
	}
	// 12 per page: car 13 is on page 2
	if strings.Contains(view, "Tesla Model 3") {
		t.Error("page 2 car rendered on page 1")
	}
}

func TestCatalogFetchError(t *testing.T) {
	src := newFakeSource()
	src.failCatalog = true
	m := loadedModel(t, src)

	view := m.View()
	if !strings.Contains(view, "Error: Failed to fetch cars data") {
		t.Fatalf("inline error missing from view:\n%s", view)
	}
	if strings.Contains(view, "Year:") || strings.Contains(view, "Price: $") {
		t.Error("cards rendered despite fetch error")
	}
	if strings.Contains(view, noCarsText) {
		t.Error("empty message should not replace the error")
	}
	if len(m.Catalog().Controls()) != 0 {
		t.Error("page controls present despite fetch error")
	}
}

func TestEmptyCatalog(t *testing.T) {
	src := newFakeSource()
	src.cars = []types.Car{}
	m := loadedModel(t, src)

	if !strings.Contains(m.View(), noCarsText) {
		t.Error("expected empty message")
	}
	if n := len(m.Catalog().Controls()); n != 0 {
		t.Errorf("expected zero page buttons, got %d", n)
	}
}

func TestSearchScenario(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	m = update(t, m, runes("2"))
	if m.Catalog().Page() != 2 {
		t.Fatalf("precondition: page %d want 2", m.Catalog().Page())
	}

	m = update(t, m, runes("/"))
	if m.focus != focusSearch {
		t.Fatalf("focus: got %v want search", m.focus)
	}
	m = typeText(t, m, "Toy")

	got := filteredIDs(m)
	if len(got) != 2 || got[0] != "3" || got[1] != "10" {
		t.Fatalf("filtered: got %v want [3 10]", got)
	}
	if m.Catalog().Page() != 1 {
		t.Errorf("page: got %d want 1", m.Catalog().Page())
	}
	if m.Catalog().PageCount() != 1 {
		t.Errorf("page count: got %d want 1", m.Catalog().PageCount())
	}

	// Typed letters do not leak into grid bindings
	if m.state != ListView {
		t.Errorf("state changed while typing: %v", m.state)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := len(m.Catalog().Filtered()); got != 15 {
		t.Errorf("cleared search: got %d want 15", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusGrid {
		t.Errorf("esc should return focus to grid, got %v", m.focus)
	}
}

func TestSearchNoMatch(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	m = update(t, m, runes("/"))
	m = typeText(t, m, "zzz")
	if !strings.Contains(m.View(), noCarsText) {
		t.Error("expected empty message for no matches")
	}
}

func TestPriceSlider(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	m = update(t, m, runes("2"))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusPrice {
		t.Fatalf("focus: got %v want price", m.focus)
	}

	// 50,000 -> 20,000
	for i := 0; i < 30; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.slider.Value() != 20000 {
		t.Fatalf("slider: got %v want 20000", m.slider.Value())
	}
	if !strings.Contains(m.View(), "$20,000") {
		t.Error("slider label not updated")
	}
	if m.Catalog().Page() != 1 {
		t.Errorf("page: got %d want 1", m.Catalog().Page())
	}
	for _, c := range m.Catalog().Filtered() {
		if c.Price() > 20000 {
			t.Errorf("car %s over ceiling: %v", c.ID(), c.Price())
		}
	}
	// 5,000 + 3,000*5 = 20,000 is included
	if got := len(m.Catalog().Filtered()); got != 6 {
		t.Errorf("filtered: got %d want 6", got)
	}
}

func TestPriceSliderClamps(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusPrice {
		t.Fatalf("focus: got %v want price", m.focus)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.slider.Value() != 50000 {
		t.Errorf("slider moved past max: %v", m.slider.Value())
	}
}

func TestPageSelectionKeepsFiltered(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	before := filteredIDs(m)

	m = update(t, m, runes("]"))
	if m.Catalog().Page() != 2 {
		t.Fatalf("page: got %d want 2", m.Catalog().Page())
	}
	if !strings.Contains(m.View(), "Tesla Model 3") {
		t.Error("page 2 car missing")
	}

	m = update(t, m, runes("]"))
	if m.Catalog().Page() != 2 {
		t.Errorf("page past end: got %d want 2", m.Catalog().Page())
	}

	m = update(t, m, runes("9"))
	if m.Catalog().Page() != 2 {
		t.Errorf("nonexistent page button changed page to %d", m.Catalog().Page())
	}

	m = update(t, m, runes("1"))
	if m.Catalog().Page() != 1 {
		t.Errorf("page: got %d want 1", m.Catalog().Page())
	}

	after := filteredIDs(m)
	if strings.Join(before, ",") != strings.Join(after, ",") {
		t.Errorf("page selection changed filtered view")
	}

	active := 0
	for _, b := range m.Catalog().Controls() {
		if b.Active {
			active++
		}
	}
	if active != 1 {
		t.Errorf("expected one active page button, got %d", active)
	}
}

func TestOpenDetailAndBack(t *testing.T) {
	src := newFakeSource()
	m := loadedModel(t, src)

	m = update(t, m, runes("2"))
	filteredBefore := filteredIDs(m)
	pageBefore := m.Catalog().Page()
	if pageBefore != 2 {
		t.Fatalf("precondition: page %d want 2", pageBefore)
	}

	m = update(t, m, runes("l"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a card should issue a detail fetch")
	}
	m = update(t, m, cmd())

	if m.State() != DetailView {
		t.Fatalf("state: got %v want DetailView", m.State())
	}
	want := m.Catalog().PageItems()[1]
	if len(src.detailCalls) != 1 || src.detailCalls[0] != want.ID() {
		t.Fatalf("detail calls: %v want [%s]", src.detailCalls, want.ID())
	}

	view := m.View()
	heading := fmt.Sprintf("%s (%d)", want.Title(), want.Year())
	if !strings.Contains(view, heading) {
		t.Errorf("heading %q missing", heading)
	}
	for _, label := range []string{"Image:", "Price:", "Mileage:", "Condition:", "Fuel Type:", "Transmission:", "Color:", "VIN:", "Description:"} {
		if !strings.Contains(view, label) {
			t.Errorf("label %q missing from detail", label)
		}
	}
	if !strings.Contains(view, "42000 miles") {
		t.Error("mileage value missing")
	}
	if !strings.Contains(view, "VIN"+want.ID()) {
		t.Error("vin value missing")
	}
	if !strings.Contains(view, backToHome) {
		t.Error("back control missing")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State() != ListView {
		t.Fatalf("state after back: %v", m.State())
	}
	if m.Catalog().Page() != pageBefore {
		t.Errorf("page after back: got %d want %d", m.Catalog().Page(), pageBefore)
	}
	if strings.Join(filteredIDs(m), ",") != strings.Join(filteredBefore, ",") {
		t.Errorf("filtered view changed across detail round trip")
	}
}

func TestDetailFetchErrorAlert(t *testing.T) {
	src := newFakeSource()
	src.failDetail = true
	m := loadedModel(t, src)

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected detail fetch command")
	}
	m = update(t, m, cmd())

	if m.State() != ListView {
		t.Errorf("state: got %v want ListView", m.State())
	}
	view := m.View()
	if !strings.Contains(view, "Error: Failed to fetch car details") {
		t.Fatalf("alert missing:\n%s", view)
	}
	if !strings.Contains(view, "Honda Civic") {
		t.Error("list should stay intact under the alert")
	}

	// The alert blocks other input
	m = update(t, m, runes("]"))
	if m.Catalog().Page() != 1 {
		t.Errorf("input leaked through alert: page %d", m.Catalog().Page())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.alert != "" {
		t.Error("enter should dismiss the alert")
	}
	if strings.Contains(m.View(), "Failed to fetch car details") {
		t.Error("alert still rendered after dismiss")
	}
}

func TestStaleDetailResponseIgnored(t *testing.T) {
	src := newFakeSource()
	m := loadedModel(t, src)

	m, first := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runes("l"))
	m, second := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	firstMsg := first()
	secondMsg := second()

	m = update(t, m, secondMsg)
	m = update(t, m, firstMsg)

	if m.State() != DetailView {
		t.Fatalf("state: got %v want DetailView", m.State())
	}
	if got := m.detail.Car().ID(); got != "2" {
		t.Errorf("detail shows car %s, want newest request (2)", got)
	}
}

func TestDetailResponseAfterBackIgnored(t *testing.T) {
	src := newFakeSource()
	m := loadedModel(t, src)

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	first := cmd()
	m = update(t, m, first)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m = update(t, m, first)
	if m.State() != ListView {
		t.Errorf("replayed response reopened detail view")
	}
}

func TestCursorMovesWithinPage(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	cols := m.columns()

	m = update(t, m, runes("j"))
	if m.cursor != cols {
		t.Errorf("cursor after down: got %d want %d", m.cursor, cols)
	}
	m = update(t, m, runes("k"))
	m = update(t, m, runes("h"))
	if m.cursor != 0 {
		t.Errorf("cursor moved before first card: %d", m.cursor)
	}
	for i := 0; i < 20; i++ {
		m = update(t, m, runes("l"))
	}
	if m.cursor != catalog.PageSize-1 {
		t.Errorf("cursor past last card: got %d", m.cursor)
	}
}

func TestQuit(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	_, cmd := updateCmd(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestDispatchTableCoversActions(t *testing.T) {
	for a := actionQuit; a <= actionToggleHelp; a++ {
		if _, ok := handlers[a]; !ok {
			t.Errorf("action %d has no handler", a)
		}
	}
}

func smallTerminalModel(t *testing.T, src *fakeSource) Model {
	t.Helper()
	m := NewModel(context.Background(), src, testOptions())
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return update(t, m, fetchCatalog(context.Background(), src)())
}

func assertFits(t *testing.T, view string, width, height int) {
	t.Helper()
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		t.Fatalf("view has %d lines for a %d line terminal:\n%s", len(lines), height, view)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > width {
			t.Errorf("line %d is %d columns wide, terminal is %d: %q", i, w, width, line)
		}
	}
}

func TestListFitsSmallTerminal(t *testing.T) {
	m := smallTerminalModel(t, newFakeSource())

	view := m.View()
	assertFits(t, view, 80, 24)
	for _, want := range []string{appTitle, "Search", "Max price", "$50,000", "Honda Civic"} {
		if !strings.Contains(view, want) {
			t.Errorf("%q not visible at 80x24", want)
		}
	}
}

func TestGridFollowsCursor(t *testing.T) {
	m := smallTerminalModel(t, newFakeSource())
	if strings.Contains(m.View(), "Subaru Outback") {
		t.Fatal("last card of the page should start below the fold")
	}

	for i := 0; i < catalog.PageSize; i++ {
		m = update(t, m, runes("j"))
	}
	if m.cursor/m.columns() != (catalog.PageSize-1)/m.columns() {
		t.Fatalf("cursor did not reach the last row: %d", m.cursor)
	}

	view := m.View()
	assertFits(t, view, 80, 24)
	if !strings.Contains(view, "Subaru Outback") {
		t.Error("cursor row scrolled out of view")
	}
	if strings.Contains(view, "Honda Civic") {
		t.Error("first row should scroll off when the cursor is at the bottom")
	}
	if !strings.Contains(view, "$50,000") {
		t.Error("filter bar scrolled off")
	}
}

func TestDetailScrollsToBack(t *testing.T) {
	src := newFakeSource()
	car := src.cars[0]
	src.details[car.ID()] = types.NewCarDetail(car, 42000, "Used", "Gasoline", "Automatic", "Blue", "VIN1",
		strings.Repeat("Well maintained, full service history, new tires. ", 30))
	m := smallTerminalModel(t, src)

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, cmd())
	if m.State() != DetailView {
		t.Fatalf("state: got %v want DetailView", m.State())
	}

	view := m.View()
	assertFits(t, view, 80, 24)
	if strings.Contains(view, backToHome) {
		t.Fatal("long detail should not fit without scrolling")
	}

	for i := 0; i < 5 && !strings.Contains(m.View(), backToHome); i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	view = m.View()
	if !strings.Contains(view, backToHome) {
		t.Fatalf("scrolling never reached the back control (offset %d)", m.viewport.YOffset)
	}
	assertFits(t, view, 80, 24)
	if m.State() != DetailView {
		t.Error("scrolling left the detail view")
	}

	m = update(t, m, runes("k"))
	if m.State() != DetailView {
		t.Error("line scroll left the detail view")
	}
}

func TestSliderFollowsCatalog(t *testing.T) {
	src := newFakeSource()
	src.cars = append(src.cars, types.NewCar("16", "Porsche", "911", 2024, 120500, ""))

	opts := testOptions()
	opts.PriceMax = 0
	m := NewModel(context.Background(), src, opts)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, fetchCatalog(context.Background(), src)())

	if got := m.slider.Value(); got != 121000 {
		t.Fatalf("slider: got %v want 121000", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Catalog().Total(); got != 16 {
		t.Errorf("slider back at its top should include every car, got %d", got)
	}
}

func TestSliderKeepsExplicitMax(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	if got := m.slider.Value(); got != 50000 {
		t.Errorf("slider: got %v want 50000", got)
	}
}
