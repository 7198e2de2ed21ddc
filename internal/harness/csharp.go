package harness

// CSharp is the reflection harness for the .NET image. System.Text.Json
// documents preserve property order, which carries the positional binding
// for parameters whose names the runtime cannot recover from metadata.
const CSharp = `using System;
using System.Collections.Generic;
using System.Linq;
using System.Reflection;
using System.Text.Json;

public class ListNode
{
    public int val;
    public ListNode next;
    public ListNode(int val = 0, ListNode next = null) { this.val = val; this.next = next; }
}

public class TreeNode
{
    public int val;
    public TreeNode left;
    public TreeNode right;
    public TreeNode(int val = 0, TreeNode left = null, TreeNode right = null)
    {
        this.val = val;
        this.left = left;
        this.right = right;
    }
}

public class Node
{
    public int val;
    public IList<Node> neighbors;
    public Node(int val = 0) { this.val = val; this.neighbors = new List<Node>(); }
}

__SOURCE_CODE_PLACEHOLDER__

public static class Harness
{
    public static void Main()
    {
        try
        {
            string raw = Console.In.ReadToEnd();
            using JsonDocument doc = JsonDocument.Parse(raw);
            string functionName = doc.RootElement.GetProperty("function_name").GetString();
            JsonElement input = doc.RootElement.TryGetProperty("input", out var i)
                ? i
                : JsonDocument.Parse("{}").RootElement;

            var (method, receiver) = ResolveTarget(functionName);
            object[] args = BindArguments(method, input);
            object result = method.Invoke(receiver, args);

            string json = JsonSerializer.Serialize(new Dictionary<string, object>
            {
                ["result"] = Serialize(result),
            });
            Console.WriteLine(json);
        }
        catch (TargetInvocationException e)
        {
            Fail(e.InnerException?.ToString() ?? e.ToString());
        }
        catch (Exception e)
        {
            Fail(e.ToString());
        }
    }

    private static void Fail(string message)
    {
        Console.WriteLine(JsonSerializer.Serialize(new Dictionary<string, object>
        {
            ["error"] = message,
        }));
        Environment.Exit(1);
    }

    private static (MethodInfo, object) ResolveTarget(string name)
    {
        var assembly = Assembly.GetExecutingAssembly();
        var solution = assembly.GetTypes().FirstOrDefault(t => t.Name == "Solution");
        var candidates = solution != null
            ? new[] { solution }
            : assembly.GetTypes().Where(t => t.IsClass).ToArray();

        foreach (var type in candidates)
        {
            var method = type
                .GetMethods(BindingFlags.Public | BindingFlags.NonPublic |
                            BindingFlags.Instance | BindingFlags.Static)
                .FirstOrDefault(m => m.Name == name);
            if (method == null) continue;
            object receiver = method.IsStatic ? null : Activator.CreateInstance(type);
            return (method, receiver);
        }
        throw new MissingMethodException($"function '{name}' not found");
    }

    private static object[] BindArguments(MethodInfo method, JsonElement input)
    {
        int cyclePos = -1;
        var values = new List<JsonElement>();
        foreach (var prop in input.EnumerateObject())
        {
            if (prop.Name == "pos")
            {
                if (prop.Value.ValueKind == JsonValueKind.Number) cyclePos = prop.Value.GetInt32();
                continue;
            }
            values.Add(prop.Value);
        }

        var parameters = method.GetParameters();
        if (values.Count < parameters.Length)
        {
            throw new ArgumentException(
                $"expected {parameters.Length} parameters, got {values.Count}");
        }

        var args = new object[parameters.Length];
        for (int i = 0; i < parameters.Length; i++)
        {
            args[i] = Convert(values[i], parameters[i].ParameterType, cyclePos);
        }
        return args;
    }

    private static object Convert(JsonElement value, Type type, int cyclePos)
    {
        if (type == typeof(int)) return value.GetInt32();
        if (type == typeof(long)) return value.GetInt64();
        if (type == typeof(double)) return value.GetDouble();
        if (type == typeof(bool)) return value.GetBoolean();
        if (type == typeof(string)) return value.GetString();
        if (type == typeof(int[]))
            return value.EnumerateArray().Select(e => e.GetInt32()).ToArray();
        if (type == typeof(int[][]))
            return value.EnumerateArray()
                .Select(row => row.EnumerateArray().Select(e => e.GetInt32()).ToArray())
                .ToArray();
        if (type == typeof(char[][]))
            return value.EnumerateArray()
                .Select(row => row.EnumerateArray().Select(e => e.GetString()[0]).ToArray())
                .ToArray();
        if (type == typeof(IList<int>) || type == typeof(List<int>))
            return value.EnumerateArray().Select(e => e.GetInt32()).ToList();
        if (type == typeof(IList<IList<int>>))
            return (IList<IList<int>>)value.EnumerateArray()
                .Select(row => (IList<int>)row.EnumerateArray().Select(e => e.GetInt32()).ToList())
                .ToList();
        if (type == typeof(ListNode)) return BuildLinkedList(value, cyclePos);
        if (type == typeof(TreeNode)) return BuildTree(value);
        if (type == typeof(Node)) return BuildGraph(value);
        throw new ArgumentException($"unsupported parameter type: {type.Name}");
    }

    private static ListNode BuildLinkedList(JsonElement values, int pos)
    {
        var nodes = values.EnumerateArray().Select(e => new ListNode(e.GetInt32())).ToList();
        if (nodes.Count == 0) return null;
        for (int i = 0; i < nodes.Count - 1; i++) nodes[i].next = nodes[i + 1];
        if (pos >= 0 && pos < nodes.Count) nodes[nodes.Count - 1].next = nodes[pos];
        return nodes[0];
    }

    private static List<int> LinkedListToArray(ListNode head)
    {
        var result = new List<int>();
        var seen = new HashSet<ListNode>(ReferenceEqualityComparer.Instance);
        while (head != null && seen.Add(head))
        {
            result.Add(head.val);
            head = head.next;
        }
        return result;
    }

    private static TreeNode BuildTree(JsonElement values)
    {
        var items = values.EnumerateArray().ToList();
        if (items.Count == 0 || items[0].ValueKind == JsonValueKind.Null) return null;
        var root = new TreeNode(items[0].GetInt32());
        var queue = new Queue<TreeNode>();
        queue.Enqueue(root);
        int i = 1;
        while (queue.Count > 0 && i < items.Count)
        {
            var node = queue.Dequeue();
            if (i < items.Count && items[i].ValueKind != JsonValueKind.Null)
            {
                node.left = new TreeNode(items[i].GetInt32());
                queue.Enqueue(node.left);
            }
            i++;
            if (i < items.Count && items[i].ValueKind != JsonValueKind.Null)
            {
                node.right = new TreeNode(items[i].GetInt32());
                queue.Enqueue(node.right);
            }
            i++;
        }
        return root;
    }

    private static List<object> TreeToArray(TreeNode root)
    {
        var result = new List<object>();
        if (root == null) return result;
        var frontier = new List<TreeNode> { root };
        while (frontier.Count > 0)
        {
            var node = frontier[0];
            frontier.RemoveAt(0);
            if (node == null)
            {
                result.Add(null);
                continue;
            }
            result.Add(node.val);
            frontier.Add(node.left);
            frontier.Add(node.right);
        }
        while (result.Count > 0 && result[result.Count - 1] == null)
        {
            result.RemoveAt(result.Count - 1);
        }
        return result;
    }

    private static Node BuildGraph(JsonElement adjList)
    {
        var rows = adjList.EnumerateArray().ToList();
        if (rows.Count == 0) return null;
        var nodes = Enumerable.Range(1, rows.Count).Select(v => new Node(v)).ToList();
        for (int i = 0; i < rows.Count; i++)
        {
            foreach (var n in rows[i].EnumerateArray())
            {
                int v = n.GetInt32();
                if (v >= 1 && v <= nodes.Count) nodes[i].neighbors.Add(nodes[v - 1]);
            }
        }
        return nodes[0];
    }

    private static List<List<int>> GraphToAdjList(Node node)
    {
        var result = new List<List<int>>();
        if (node == null) return result;
        var seen = new HashSet<Node>(ReferenceEqualityComparer.Instance);
        var ordered = new List<Node>();
        var queue = new Queue<Node>();
        queue.Enqueue(node);
        int maxVal = 0;
        while (queue.Count > 0)
        {
            var curr = queue.Dequeue();
            if (curr == null || !seen.Add(curr)) continue;
            ordered.Add(curr);
            if (curr.val > maxVal) maxVal = curr.val;
            foreach (var n in curr.neighbors)
            {
                if (n != null && !seen.Contains(n)) queue.Enqueue(n);
            }
        }
        for (int i = 0; i < maxVal; i++) result.Add(new List<int>());
        foreach (var curr in ordered)
        {
            result[curr.val - 1] = curr.neighbors.Where(n => n != null).Select(n => n.val).ToList();
        }
        return result;
    }

    private static object Serialize(object value) => value switch
    {
        ListNode list => LinkedListToArray(list),
        TreeNode tree => TreeToArray(tree),
        Node graph => GraphToAdjList(graph),
        _ => value,
    };
}
`

// CSharpProject is the minimal project descriptor the .NET toolchain needs
// next to Program.cs.
const CSharpProject = `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <OutputType>Exe</OutputType>
    <TargetFramework>net8.0</TargetFramework>
    <ImplicitUsings>enable</ImplicitUsings>
    <Nullable>disable</Nullable>
  </PropertyGroup>
</Project>
`
