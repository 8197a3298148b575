package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/tui/components"
	"github.com/theirongolddev/mealplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// recipeTypes are the meal type filter choices; "" means all.
var recipeTypes = []model.MealType{"", model.Breakfast, model.Lunch, model.Dinner}

// recipesState holds the recipes tab state.
type recipesState struct {
	cursor     int
	typeIdx    int
	cuisineIdx int // 0 is all, otherwise index+1 into the cuisine list
	search     textinput.Model
	searching  bool
}

func newRecipesState() recipesState {
	ti := textinput.New()
	ti.Placeholder = "meal or ingredient"
	ti.Prompt = "/ "
	ti.CharLimit = 40
	ti.Width = 30
	return recipesState{search: ti}
}

func (a App) recipeCuisines() []model.Cuisine {
	return pipeline.Cuisines(pipeline.UniqueMeals(a.meals))
}

func (a App) cuisineFilter() model.Cuisine {
	cuisines := a.recipeCuisines()
	i := a.recipeState.cuisineIdx - 1
	if i < 0 || i >= len(cuisines) {
		return ""
	}
	return cuisines[i]
}

// filteredMeals applies the type, cuisine and search filters to the
// distinct catalog meals.
func (a App) filteredMeals() []model.ComposedMeal {
	meals := pipeline.UniqueMeals(a.meals)
	if mt := recipeTypes[a.recipeState.typeIdx]; mt != "" {
		meals = pipeline.FilterByMealType(meals, mt)
	}
	meals = pipeline.FilterByCuisine(meals, a.cuisineFilter())

	q := strings.ToLower(strings.TrimSpace(a.recipeState.search.Value()))
	if q == "" {
		return meals
	}
	var out []model.ComposedMeal
	for _, m := range meals {
		if mealMatches(m, q) {
			out = append(out, m)
		}
	}
	return out
}

func mealMatches(m model.ComposedMeal, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) {
		return true
	}
	for _, ing := range m.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}

func (a App) updateRecipes(key string) (App, tea.Cmd, bool) {
	rs := &a.recipeState
	switch key {
	case "j", "down":
		rs.cursor = clamp(rs.cursor+1, 0, len(a.filteredMeals())-1)
	case "k", "up":
		rs.cursor = clamp(rs.cursor-1, 0, len(a.filteredMeals())-1)
	case "/":
		rs.searching = true
		return a, rs.search.Focus(), true
	case "f":
		rs.typeIdx = (rs.typeIdx + 1) % len(recipeTypes)
		rs.cursor = 0
	case "c":
		rs.cuisineIdx = (rs.cuisineIdx + 1) % (len(a.recipeCuisines()) + 1)
		rs.cursor = 0
	case "esc":
		rs.typeIdx, rs.cuisineIdx, rs.cursor = 0, 0, 0
		rs.search.SetValue("")
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) updateRecipeSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rs := &a.recipeState
	switch msg.String() {
	case "enter":
		rs.searching = false
		rs.search.Blur()
		return a, nil
	case "esc":
		rs.searching = false
		rs.search.Blur()
		rs.search.SetValue("")
		rs.cursor = 0
		return a, nil
	}
	var cmd tea.Cmd
	rs.search, cmd = rs.search.Update(msg)
	rs.cursor = 0
	return a, cmd
}

func (a App) renderRecipesTab(cw, h int) string {
	t := theme.Active
	meals := a.filteredMeals()

	pill := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	on := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true).Padding(0, 1)

	typeLabel := "all meals"
	if mt := recipeTypes[a.recipeState.typeIdx]; mt != "" {
		typeLabel = string(mt)
	}
	cuisineLabel := "all cuisines"
	if c := a.cuisineFilter(); c != "" {
		cuisineLabel = string(c)
	}
	typePill, cuisinePill := pill, pill
	if a.recipeState.typeIdx > 0 {
		typePill = on
	}
	if a.recipeState.cuisineIdx > 0 {
		cuisinePill = on
	}
	filters := typePill.Render("f "+typeLabel) + pill.Render(" ") + cuisinePill.Render("c "+cuisineLabel) + pill.Render(" ")
	if a.recipeState.searching || a.recipeState.search.Value() != "" {
		filters += a.recipeState.search.View()
	} else {
		filters += pill.Render("/ search")
	}
	filterBar := lipgloss.NewStyle().Background(t.Surface).Width(cw).Render(filters)

	if len(meals) == 0 {
		return filterBar + "\n" + components.ContentCard("Recipes",
			lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("No meals match these filters"), cw)
	}

	cursor := clamp(a.recipeState.cursor, 0, len(meals)-1)
	listW := max(cw/3, 36)
	detailW := cw - listW
	visible := max(h-4, 3)

	listCard := components.ContentCard(fmt.Sprintf("Meals [%d]", len(meals)),
		renderMealList(meals, cursor, components.CardInnerWidth(listW), visible), listW)

	sel := meals[cursor]
	detail := renderMealBody(sel, components.CardInnerWidth(detailW)) + "\n\n" +
		renderMethod(sel, components.CardInnerWidth(detailW))
	detailCard := components.ContentCard(sel.Name, detail, detailW)

	return filterBar + "\n" + components.CardRow([]string{listCard, detailCard})
}

func renderMealList(meals []model.ComposedMeal, cursor, w, visible int) string {
	t := theme.Active
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	offset := scrollWindow(cursor, 0, visible)
	end := min(offset+visible, len(meals))

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		m := meals[i]
		tag := lipgloss.NewStyle().Foreground(mealColor(m.Type)).Background(t.Surface).Render("●")
		kcal := cli.FormatKcal(m.Totals.Calories)
		nameW := max(w-lipgloss.Width(kcal)-4, 8)
		line := fmt.Sprintf("%-*s %s", nameW, truncStr(m.Name, nameW), kcal)
		if i == cursor {
			lines = append(lines, tag+selStyle.Render(" "+line))
		} else {
			lines = append(lines, tag+rowStyle.Render(" "+line))
		}
	}
	return strings.Join(lines, "\n")
}

// renderMethod lists each component's numbered instructions.
func renderMethod(m model.ComposedMeal, w int) string {
	t := theme.Active
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	stepStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Method"))
	for _, c := range m.Components() {
		if len(c.Instructions) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(nameStyle.Render(c.Name))
		for i, step := range c.Instructions {
			b.WriteString("\n")
			b.WriteString(stepStyle.Render(truncStr(fmt.Sprintf("%2d. %s", i+1, step), w)))
		}
	}
	return b.String()
}
