package data

var tennisColumns = []string{"Outlook", "Temperature", "Humidity", "Windy", "Play"}

var tennisRows = [][]string{
    {"Sunny", "Hot", "High", "False", "No"},
    {"Sunny", "Hot", "High", "True", "No"},
    {"Overcast", "Hot", "High", "False", "Yes"},
    {"Rainy", "Mild", "High", "False", "Yes"},
    {"Rainy", "Cool", "Normal", "False", "Yes"},
    {"Rainy", "Cool", "Normal", "True", "No"},
    {"Overcast", "Cool", "Normal", "True", "Yes"},
    {"Sunny", "Mild", "High", "False", "No"},
    {"Sunny", "Cool", "Normal", "False", "Yes"},
    {"Rainy", "Mild", "Normal", "False", "Yes"},
    {"Sunny", "Mild", "Normal", "True", "Yes"},
    {"Overcast", "Mild", "High", "True", "Yes"},
    {"Overcast", "Hot", "Normal", "False", "Yes"},
    {"Rainy", "Mild", "High", "True", "No"},
}

// TennisTarget is the label column of the tennis table.
const TennisTarget = "Play"

// Tennis returns a fresh copy of the classic 14-row play-tennis table.
func Tennis() Dataset {
    cols := make([]string, len(tennisColumns))
    copy(cols, tennisColumns)
    ds := Dataset{Columns: cols, Rows: make([]Row, 0, len(tennisRows))}
    for _, rec := range tennisRows {
        r := make(Row, len(cols))
        for i, c := range cols { r[c] = rec[i] }
        ds.Rows = append(ds.Rows, r)
    }
    return ds
}
