package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// ReminderData feeds the task reminder template.
type ReminderData struct {
	UserName        string
	TaskTitle       string
	TaskDescription string
	DueDate         *time.Time
	ReminderDate    *time.Time
	IsPro           bool
	AppURL          string
}

var reminderTmpl = template.Must(template.New("task_reminder").Funcs(template.FuncMap{
	"longDate": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.UTC().Format("Monday, January 2, 2006")
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Task Reminder</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #667eea; color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1>🔔 Task Reminder</h1>
    <p>Hi {{.UserName}}, here's your task reminder!</p>
  </div>
  <div style="background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px;">
    <div style="font-size: 24px; font-weight: bold; color: #2d3748;">
      {{.TaskTitle}}
      {{- if .IsPro}} <span style="background: #48bb78; color: white; padding: 4px 8px; border-radius: 4px; font-size: 12px;">PRO</span>{{end}}
    </div>
    {{- if .TaskDescription}}
    <div style="background: white; padding: 15px; border-radius: 8px; margin: 15px 0; border-left: 4px solid #667eea;">
      <p>{{.TaskDescription}}</p>
    </div>
    {{- end}}
    <div style="background: white; padding: 15px; border-radius: 8px; margin: 15px 0;">
      {{- if .DueDate}}
      <div style="font-weight: 600; color: #4a5568;">📅 Due Date:</div>
      <div>{{longDate .DueDate}}</div>
      {{- end}}
      {{- if .ReminderDate}}
      <div style="font-weight: 600; color: #4a5568;">⏰ Reminder Date:</div>
      <div>{{longDate .ReminderDate}}</div>
      {{- end}}
    </div>
    <div style="margin-top: 25px; text-align: center;">
      <a href="{{.AppURL}}/dashboard" style="background: #667eea; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; font-weight: 600;">View Task Dashboard</a>
    </div>
  </div>
  <div style="text-align: center; margin-top: 30px; color: #718096; font-size: 14px;">
    <p>This reminder was sent because you have an upcoming task.</p>
    <p>{{if .IsPro}}Custom reminder dates are a PRO feature.{{else}}Upgrade to PRO for custom reminder dates.{{end}}</p>
  </div>
</body>
</html>
`))

// RenderTaskReminder produces the HTML body for a reminder email.
func RenderTaskReminder(data ReminderData) (string, error) {
	var buf bytes.Buffer
	if err := reminderTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render reminder email: %w", err)
	}
	return buf.String(), nil
}

// ReminderSubject is the subject line used for both reminder kinds.
func ReminderSubject(taskTitle string) string {
	return "Task Reminder: " + taskTitle
}
